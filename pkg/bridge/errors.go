package bridge

import (
	"errors"

	"github.com/LiskHQ/lisk-bridge/pkg/proof"
)

var (
	// ErrInvalidProof is returned when the proof given to Unlock is not valid.
	ErrInvalidProof    = proof.ErrInvalidProof
	ErrNoLock          = errors.New("no locked funds for the account")
	ErrChainIDMismatch = errors.New("funds are locked for another chain")
	ErrZeroAmount      = errors.New("amount must be greater than zero")
	ErrEmptyAccount    = errors.New("account must not be empty")
	// ErrTooManyTransactions is returned when a proof exceeds the configured transaction limit.
	ErrTooManyTransactions = errors.New("proof has too many transactions")
)
