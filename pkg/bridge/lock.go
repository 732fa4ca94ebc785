package bridge

import (
	"fmt"
	"math"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
)

// ChainID identifies a destination chain.
type ChainID uint16

// Lock is the amount an account locked for a destination chain.
type Lock struct {
	ChainID ChainID `json:"chainID"`
	Amount  uint64  `json:"amount,string"`
}

// AccountLock is a lock with the account owning it.
type AccountLock struct {
	Account codec.Hex `json:"account"`
	Lock    *Lock     `json:"lock"`
}

func (l *Lock) Encode() []byte {
	writer := codec.NewWriter()
	writer.WriteUInt(1, uint64(l.ChainID))
	writer.WriteUInt(2, l.Amount)
	return writer.Result()
}

func (l *Lock) Decode(data []byte) error {
	reader := codec.NewReader(data)
	if err := l.DecodeFromReader(reader); err != nil {
		return err
	}
	if reader.HasUnreadBytes() {
		return codec.ErrUnreadBytes
	}
	return nil
}

func (l *Lock) DecodeFromReader(reader *codec.Reader) error {
	chainID, err := reader.ReadUInt(1, true)
	if err != nil {
		return err
	}
	if chainID > math.MaxUint16 {
		return fmt.Errorf("chainID %d: %w", chainID, codec.ErrOutOfRange)
	}
	amount, err := reader.ReadUInt(2, true)
	if err != nil {
		return err
	}
	l.ChainID = ChainID(chainID)
	l.Amount = amount
	return nil
}
