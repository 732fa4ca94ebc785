// Package proof verifies that a block hash commits to a list of transactions on top of a
// previous block hash.
//
// The commitment is computed in two merkle steps. The canonical values of all transactions
// form the leaves of the transactions tree, and its root is paired with the previous block
// hash as the two leaves of the meta tree. The meta tree root is the block hash.
package proof

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
	"github.com/LiskHQ/lisk-bridge/pkg/collection"
	"github.com/LiskHQ/lisk-bridge/pkg/trie/merkle"
)

// ErrNilTransaction is returned when a transaction list contains nil.
var ErrNilTransaction = errors.New("transaction must not be nil")

// Proof holds a claimed block hash with the data it commits to.
// It is immutable once constructed.
type Proof struct {
	prevBlockHash []byte
	blockHash     []byte
	transactions  []Transaction
}

// NewProof returns a proof holding copies of the given values.
func NewProof(prevBlockHash, blockHash []byte, transactions []Transaction) (*Proof, error) {
	if err := checkTransactions(transactions); err != nil {
		return nil, err
	}
	return &Proof{
		prevBlockHash: collection.Copy(prevBlockHash),
		blockHash:     collection.Copy(blockHash),
		transactions:  collection.Copy(transactions),
	}, nil
}

// Generate returns a proof whose block hash is computed from prevBlockHash and transactions.
func Generate(prevBlockHash []byte, transactions []Transaction) (*Proof, error) {
	if err := checkTransactions(transactions); err != nil {
		return nil, err
	}
	return &Proof{
		prevBlockHash: collection.Copy(prevBlockHash),
		blockHash:     ComputeBlockHash(prevBlockHash, transactions),
		transactions:  collection.Copy(transactions),
	}, nil
}

// TransactionsRoot returns the root of the merkle tree over the canonical values of transactions.
func TransactionsRoot(transactions []Transaction) []byte {
	return merkle.CalculateRoot(Leaves(transactions))
}

// ComputeBlockHash returns the root of the merkle tree over prevBlockHash and the transactions root.
func ComputeBlockHash(prevBlockHash []byte, transactions []Transaction) []byte {
	return merkle.CalculateRoot([][]byte{
		prevBlockHash,
		TransactionsRoot(transactions),
	})
}

func (p *Proof) PrevBlockHash() []byte { return collection.Copy(p.prevBlockHash) }
func (p *Proof) BlockHash() []byte     { return collection.Copy(p.blockHash) }

// Transactions returns a copy of the ordered transactions.
func (p *Proof) Transactions() []Transaction {
	return collection.Copy(p.transactions)
}

// ExpectedBlockHash returns the block hash the content of the proof commits to.
func (p *Proof) ExpectedBlockHash() []byte {
	return ComputeBlockHash(p.prevBlockHash, p.transactions)
}

// IsValid returns true iff the block hash equals the commitment of the proof content.
func (p *Proof) IsValid() bool {
	return bytes.Equal(p.blockHash, p.ExpectedBlockHash())
}

// Verify returns an error wrapping ErrInvalidProof if the proof is not valid.
func (p *Proof) Verify() error {
	expected := p.ExpectedBlockHash()
	if !bytes.Equal(p.blockHash, expected) {
		return fmt.Errorf("%w: block hash %s does not match expected %s", ErrInvalidProof, codec.Hex(p.blockHash), codec.Hex(expected))
	}
	return nil
}

// Validate checks that every transaction can be encoded byte exactly.
func (p *Proof) Validate() error {
	for i, tx := range p.transactions {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction at %d: %w", i, err)
		}
	}
	return nil
}

// InclusionProof returns the proof that the leaf at index belongs to the transactions tree.
func (p *Proof) InclusionProof(index uint64) (*merkle.Proof, error) {
	return merkle.New(Leaves(p.transactions)).GenerateProof(index)
}

func checkTransactions(transactions []Transaction) error {
	for i, tx := range transactions {
		if tx == nil {
			return fmt.Errorf("transaction at %d: %w", i, ErrNilTransaction)
		}
	}
	return nil
}
