package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"path"

	"github.com/urfave/cli/v2"

	"github.com/LiskHQ/lisk-bridge/pkg/bridge"
	"github.com/LiskHQ/lisk-bridge/pkg/db"
	"github.com/LiskHQ/lisk-bridge/pkg/event"
)

var (
	accountFlag = &cli.StringFlag{
		Name:     "account",
		Usage:    "Hex encoded account",
		Required: true,
	}
	chainIDFlag = &cli.UintFlag{
		Name:  "chain-id",
		Usage: "Destination chain ID. Defaults to bridge.chainID of the config",
	}
)

type ledger struct {
	database *db.DB
	events   *event.Emitter[*bridge.FundsEvent]
	module   *bridge.Module
}

func (rt *runtime) openLedger() (*ledger, error) {
	database, err := db.NewDB(path.Join(rt.config.System.DataPath, "data", "bridge.db"))
	if err != nil {
		return nil, err
	}
	events := event.New[*bridge.FundsEvent]()
	return &ledger{
		database: database,
		events:   events,
		module:   bridge.NewModule(bridge.NewDBStore(database), events, rt.logger, rt.config.Bridge.MaxTransactions),
	}, nil
}

func (l *ledger) Close() error {
	if err := l.events.Close(); err != nil {
		return err
	}
	return l.database.Close()
}

func accountFrom(c *cli.Context) ([]byte, error) {
	account, err := hex.DecodeString(c.String("account"))
	if err != nil {
		return nil, fmt.Errorf("invalid account: %w", err)
	}
	return account, nil
}

// chainIDFrom returns --chain-id if set, otherwise the chain ID of the config.
func (rt *runtime) chainIDFrom(c *cli.Context) (bridge.ChainID, error) {
	if !c.IsSet("chain-id") {
		if rt.config.Bridge.ChainID == 0 {
			return 0, errors.New("chain-id must be specified by --chain-id or bridge.chainID of the config")
		}
		return bridge.ChainID(rt.config.Bridge.ChainID), nil
	}
	chainID := c.Uint("chain-id")
	if chainID > math.MaxUint16 {
		return 0, fmt.Errorf("chain-id %d does not fit 16 bits", chainID)
	}
	return bridge.ChainID(chainID), nil
}

func GetLockCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "lock",
		Usage: "lock funds for a destination chain",
		Flags: []cli.Flag{
			accountFlag,
			chainIDFlag,
			&cli.Uint64Flag{
				Name:     "amount",
				Usage:    "Amount to lock",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			account, err := accountFrom(c)
			if err != nil {
				return err
			}
			chainID, err := rt.chainIDFrom(c)
			if err != nil {
				return err
			}
			l, err := rt.openLedger()
			if err != nil {
				return err
			}
			defer l.Close()
			events, err := l.events.Subscribe(bridge.EventLockedFunds, 1)
			if err != nil {
				return err
			}
			if err := l.module.Lock(account, c.Uint64("amount"), chainID); err != nil {
				return err
			}
			return printJSON(c.App.Writer, <-events)
		},
	}
}

func GetUnlockCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "unlock",
		Usage: "unlock funds with a valid block proof",
		Flags: []cli.Flag{accountFlag, chainIDFlag, proofFlag, encodedFlag},
		Action: func(c *cli.Context) error {
			account, err := accountFrom(c)
			if err != nil {
				return err
			}
			chainID, err := rt.chainIDFrom(c)
			if err != nil {
				return err
			}
			p, err := readProof(c)
			if err != nil {
				return err
			}
			l, err := rt.openLedger()
			if err != nil {
				return err
			}
			defer l.Close()
			events, err := l.events.Subscribe(bridge.EventUnlockedFunds, 1)
			if err != nil {
				return err
			}
			if _, err := l.module.Unlock(account, p, chainID); err != nil {
				return err
			}
			return printJSON(c.App.Writer, <-events)
		},
	}
}

func GetLockedCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "locked",
		Usage: "print the funds locked by an account",
		Flags: []cli.Flag{accountFlag},
		Action: func(c *cli.Context) error {
			account, err := accountFrom(c)
			if err != nil {
				return err
			}
			l, err := rt.openLedger()
			if err != nil {
				return err
			}
			defer l.Close()
			lock, exist, err := l.module.LockedFunds(account)
			if err != nil {
				return err
			}
			if !exist {
				return fmt.Errorf("%w: %x", bridge.ErrNoLock, account)
			}
			return printJSON(c.App.Writer, lock)
		},
	}
}

func GetLocksCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "locks",
		Usage: "print all locked funds",
		Action: func(c *cli.Context) error {
			l, err := rt.openLedger()
			if err != nil {
				return err
			}
			defer l.Close()
			locks, err := l.module.Locks()
			if err != nil {
				return err
			}
			return printJSON(c.App.Writer, locks)
		},
	}
}
