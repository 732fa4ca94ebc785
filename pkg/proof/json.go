package proof

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
	"github.com/LiskHQ/lisk-bridge/pkg/collection"
)

type proofJSON struct {
	PrevBlockHash codec.Hex         `json:"prevBlockHash"`
	BlockHash     codec.Hex         `json:"blockHash"`
	Transactions  []transactionJSON `json:"transactions"`
}

type transactionJSON struct {
	Kind        string `json:"kind"`
	Hash        string `json:"hash,omitempty"`
	Who         string `json:"who,omitempty"`
	Amount      int32  `json:"amount,omitempty"`
	DestChainID uint8  `json:"destChainID,omitempty"`
}

func (p *Proof) MarshalJSON() ([]byte, error) {
	txs := make([]transactionJSON, len(p.transactions))
	for i, tx := range p.transactions {
		txs[i] = toTransactionJSON(tx)
	}
	return json.Marshal(&proofJSON{
		PrevBlockHash: p.prevBlockHash,
		BlockHash:     p.blockHash,
		Transactions:  txs,
	})
}

func (p *Proof) UnmarshalJSON(data []byte) error {
	decoded := &proofJSON{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(decoded); err != nil {
		return err
	}
	txs := make([]Transaction, len(decoded.Transactions))
	for i, tx := range decoded.Transactions {
		converted, err := tx.transaction()
		if err != nil {
			return fmt.Errorf("transaction at %d: %w", i, err)
		}
		txs[i] = converted
	}
	p.prevBlockHash = collection.Copy(decoded.PrevBlockHash)
	p.blockHash = collection.Copy(decoded.BlockHash)
	p.transactions = txs
	return nil
}

func toTransactionJSON(tx Transaction) transactionJSON {
	switch t := tx.(type) {
	case HashOnly:
		return transactionJSON{Kind: t.Kind().String(), Hash: t.Hash}
	case CrossChainTransfer:
		return transactionJSON{Kind: t.Kind().String(), Who: t.Who, Amount: t.Amount, DestChainID: t.DestChainID}
	}
	return transactionJSON{Kind: tx.Kind().String()}
}

func (t transactionJSON) transaction() (Transaction, error) {
	kind, err := parseTransactionKind(t.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindHash:
		if t.Who != "" || t.Amount != 0 || t.DestChainID != 0 {
			return nil, fmt.Errorf("hash transaction must not have transfer fields")
		}
		return NewHashOnly(t.Hash), nil
	case KindCrossChainTransfer:
		if t.Hash != "" {
			return nil, fmt.Errorf("cross chain transfer must not have hash field")
		}
		return NewCrossChainTransfer(t.Who, t.Amount, t.DestChainID), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionKind, t.Kind)
}
