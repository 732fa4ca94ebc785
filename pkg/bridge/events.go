package bridge

import (
	"github.com/oklog/ulid/v2"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
)

const (
	EventLockedFunds   = "LockedFunds"
	EventUnlockedFunds = "UnlockedFunds"
)

// FundsEvent is published on the topic named by Name whenever a lock is created or released.
type FundsEvent struct {
	ID      ulid.ULID `json:"id"`
	Name    string    `json:"name"`
	Account codec.Hex `json:"account"`
	Amount  uint64    `json:"amount,string"`
	ChainID ChainID   `json:"chainID"`
}
