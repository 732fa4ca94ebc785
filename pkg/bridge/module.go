// Package bridge keeps the funds locked for transfer to other chains and releases them
// against a valid block proof.
package bridge

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
	"github.com/LiskHQ/lisk-bridge/pkg/collection"
	"github.com/LiskHQ/lisk-bridge/pkg/event"
	"github.com/LiskHQ/lisk-bridge/pkg/log"
	"github.com/LiskHQ/lisk-bridge/pkg/proof"
)

// Module is the lock ledger. All operations are serialized.
// Events are published while the ledger is locked, so subscribers must keep draining their channel.
type Module struct {
	mutex           *sync.Mutex
	store           LockStore
	events          *event.Emitter[*FundsEvent]
	logger          log.Logger
	maxTransactions int
	entropy         *ulid.MonotonicEntropy
}

// NewModule returns the ledger. maxTransactions below 1 disables the limit.
func NewModule(store LockStore, events *event.Emitter[*FundsEvent], logger log.Logger, maxTransactions int) *Module {
	return &Module{
		mutex:           new(sync.Mutex),
		store:           store,
		events:          events,
		logger:          logger.With("module", "bridge"),
		maxTransactions: maxTransactions,
		entropy:         ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Lock records amount of account for chainID, replacing any previous lock of the account.
func (m *Module) Lock(account []byte, amount uint64, chainID ChainID) error {
	if len(account) == 0 {
		return ErrEmptyAccount
	}
	if amount == 0 {
		return ErrZeroAmount
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	ev, err := m.newEvent(EventLockedFunds, account, amount, chainID)
	if err != nil {
		return err
	}
	if err := m.store.Set(account, &Lock{ChainID: chainID, Amount: amount}); err != nil {
		return err
	}
	m.logger.Infof("Locked %d for chain %d by %x", amount, chainID, account)
	m.publish(ev)
	return nil
}

// Unlock releases the lock of account for chainID if p is a valid proof and returns the released amount.
// Nothing is changed when an error is returned.
func (m *Module) Unlock(account []byte, p *proof.Proof, chainID ChainID) (uint64, error) {
	if len(account) == 0 {
		return 0, ErrEmptyAccount
	}
	if p == nil {
		return 0, fmt.Errorf("%w: proof is missing", ErrInvalidProof)
	}
	if txs := len(p.Transactions()); m.maxTransactions > 0 && txs > m.maxTransactions {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrTooManyTransactions, txs, m.maxTransactions)
	}
	if err := p.Verify(); err != nil {
		m.logger.Warningf("Rejected unlock by %x: %v", account, err)
		return 0, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	lock, exist, err := m.store.Get(account)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, ErrNoLock
	}
	if lock.ChainID != chainID {
		return 0, fmt.Errorf("%w: locked for %d but unlocking for %d", ErrChainIDMismatch, lock.ChainID, chainID)
	}
	ev, err := m.newEvent(EventUnlockedFunds, account, lock.Amount, chainID)
	if err != nil {
		return 0, err
	}
	if err := m.store.Del(account); err != nil {
		return 0, err
	}
	m.logger.Infof("Unlocked %d for chain %d by %x with block %s", lock.Amount, chainID, account, codec.Hex(p.BlockHash()))
	m.publish(ev)
	return lock.Amount, nil
}

// LockedFunds returns the current lock of account.
func (m *Module) LockedFunds(account []byte) (*Lock, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.store.Get(account)
}

// Locks returns all current locks.
func (m *Module) Locks() ([]*AccountLock, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.store.All()
}

func (m *Module) newEvent(name string, account []byte, amount uint64, chainID ChainID) (*FundsEvent, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), m.entropy)
	if err != nil {
		return nil, err
	}
	return &FundsEvent{
		ID:      id,
		Name:    name,
		Account: collection.Copy(account),
		Amount:  amount,
		ChainID: chainID,
	}, nil
}

func (m *Module) publish(ev *FundsEvent) {
	if m.events == nil {
		return
	}
	m.events.Publish(ev.Name, ev)
}
