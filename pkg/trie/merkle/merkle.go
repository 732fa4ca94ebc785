// Package merkle implements the binary merkle tree used to commit to ordered leaves.
//
// Leaves are hashed as sha512(0x00 | value) and branches as sha512(0x01 | left | right).
// Each layer is combined pairwise from the left. When a layer has an odd number of nodes,
// the last node is promoted to the next layer unchanged. The root of a tree without leaves
// is sha512 of empty bytes, and the root of a single leaf tree is its leaf hash.
//
// The promotion rule gives the same root as splitting the leaves at the largest power of
// two smaller than their count, which is how the Lisk regular merkle tree is built.
package merkle

import (
	"errors"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
	"github.com/LiskHQ/lisk-bridge/pkg/collection"
	"github.com/LiskHQ/lisk-bridge/pkg/crypto"
)

const (
	leafPrefix   byte = 0x00
	branchPrefix byte = 0x01
)

var (
	emptyHash = crypto.Hash([]byte{})

	// ErrIndexOutOfRange is returned when a proof is requested for a leaf which does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidProof is returned when an inclusion proof is malformed.
	ErrInvalidProof = errors.New("invalid inclusion proof")
)

// Tree holds every layer of a merkle tree, leaf hashes first.
type Tree struct {
	layers [][][]byte
	size   uint64
}

// New builds a tree over values in the given order.
func New(values [][]byte) *Tree {
	tree := &Tree{
		layers: [][][]byte{},
		size:   uint64(len(values)),
	}
	if len(values) == 0 {
		return tree
	}
	layer := make([][]byte, len(values))
	for i, value := range values {
		layer[i] = leafHash(value)
	}
	tree.layers = append(tree.layers, layer)
	for len(layer) > 1 {
		layer = nextLayer(layer)
		tree.layers = append(tree.layers, layer)
	}
	return tree
}

// CalculateRoot returns the root over values without keeping intermediate layers.
func CalculateRoot(values [][]byte) []byte {
	if len(values) == 0 {
		return collection.Copy(emptyHash)
	}
	layer := make([][]byte, len(values))
	for i, value := range values {
		layer[i] = leafHash(value)
	}
	for len(layer) > 1 {
		layer = nextLayer(layer)
	}
	return layer[0]
}

// EmptyRoot returns the root of a tree without leaves.
func EmptyRoot() []byte {
	return collection.Copy(emptyHash)
}

// Root returns the root hash of the tree.
func (t *Tree) Root() []byte {
	if t.size == 0 {
		return collection.Copy(emptyHash)
	}
	return collection.Copy(t.layers[len(t.layers)-1][0])
}

// Size returns number of leaves.
func (t *Tree) Size() uint64 {
	return t.size
}

// Height returns number of branch layers above the leaves.
func (t *Tree) Height() int {
	if len(t.layers) == 0 {
		return 0
	}
	return len(t.layers) - 1
}

// Layer returns a copy of the node hashes at height, leaf hashes being height 0.
func (t *Tree) Layer(height int) ([][]byte, error) {
	if height < 0 || height >= len(t.layers) {
		return nil, ErrIndexOutOfRange
	}
	return collection.DeepCopy(t.layers[height]), nil
}

// LeafHash returns the hash of the leaf at index.
func (t *Tree) LeafHash(index uint64) ([]byte, error) {
	if index >= t.size {
		return nil, ErrIndexOutOfRange
	}
	return collection.Copy(t.layers[0][index]), nil
}

// GenerateProof returns sibling hashes from the leaf at index up to the root.
// Layers where the node is promoted contribute no sibling.
func (t *Tree) GenerateProof(index uint64) (*Proof, error) {
	if index >= t.size {
		return nil, ErrIndexOutOfRange
	}
	siblingHashes := []codec.Hex{}
	idx := index
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := idx ^ 1
		if sibling < uint64(len(layer)) {
			siblingHashes = append(siblingHashes, collection.Copy(layer[sibling]))
		}
		idx >>= 1
	}
	return &Proof{
		Size:          t.size,
		Index:         index,
		SiblingHashes: siblingHashes,
	}, nil
}

func nextLayer(layer [][]byte) [][]byte {
	next := make([][]byte, 0, (len(layer)+1)/2)
	for i := 0; i+1 < len(layer); i += 2 {
		next = append(next, branchHash(layer[i], layer[i+1]))
	}
	if len(layer)%2 == 1 {
		next = append(next, layer[len(layer)-1])
	}
	return next
}

func leafHash(value []byte) []byte {
	return crypto.Hash([]byte{leafPrefix}, value)
}

func branchHash(left, right []byte) []byte {
	return crypto.Hash([]byte{branchPrefix}, left, right)
}
