package merkle

import (
	"bytes"
	"fmt"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
	"github.com/LiskHQ/lisk-bridge/pkg/crypto"
)

// Proof is an inclusion proof of a single leaf.
type Proof struct {
	Size          uint64      `json:"size,string" fieldNumber:"1"`
	Index         uint64      `json:"index,string" fieldNumber:"2"`
	SiblingHashes []codec.Hex `json:"siblingHashes" fieldNumber:"3"`
}

// VerifyProof returns true if value is the leaf at proof.Index of the tree with root.
func VerifyProof(value []byte, proof *Proof, root []byte) bool {
	calculated, err := CalculateRootFromProof(value, proof)
	if err != nil {
		return false
	}
	return bytes.Equal(calculated, root)
}

// CalculateRootFromProof recomputes the root from a leaf value and its inclusion proof.
func CalculateRootFromProof(value []byte, proof *Proof) ([]byte, error) {
	if proof == nil || proof.Size == 0 || proof.Index >= proof.Size {
		return nil, fmt.Errorf("%w: index must be less than size", ErrInvalidProof)
	}
	current := leafHash(value)
	siblings := proof.SiblingHashes
	idx, width := proof.Index, proof.Size
	for width > 1 {
		// an even node at the end of an odd layer is promoted without sibling
		if idx%2 == 1 || idx+1 < width {
			if len(siblings) == 0 {
				return nil, fmt.Errorf("%w: missing sibling hash", ErrInvalidProof)
			}
			sibling := siblings[0]
			siblings = siblings[1:]
			if len(sibling) != crypto.HashLength {
				return nil, fmt.Errorf("%w: sibling hash must be %d bytes but received %d", ErrInvalidProof, crypto.HashLength, len(sibling))
			}
			if idx%2 == 0 {
				current = branchHash(current, sibling)
			} else {
				current = branchHash(sibling, current)
			}
		}
		idx >>= 1
		width = (width + 1) / 2
	}
	if len(siblings) != 0 {
		return nil, fmt.Errorf("%w: %d unused sibling hashes", ErrInvalidProof, len(siblings))
	}
	return current, nil
}

// Encode returns the proof in bytes.
func (p *Proof) Encode() []byte {
	writer := codec.NewWriter()
	writer.WriteUInt(1, p.Size)
	writer.WriteUInt(2, p.Index)
	writer.WriteBytesArray(3, codec.HexArrayToBytesArray(p.SiblingHashes))
	return writer.Result()
}

// Decode decodes the proof strictly.
func (p *Proof) Decode(data []byte) error {
	reader := codec.NewReader(data)
	if err := p.DecodeFromReader(reader); err != nil {
		return err
	}
	if reader.HasUnreadBytes() {
		return codec.ErrUnreadBytes
	}
	return nil
}

// DecodeFromReader decodes the proof from a nested reader.
func (p *Proof) DecodeFromReader(reader *codec.Reader) error {
	size, err := reader.ReadUInt(1, true)
	if err != nil {
		return err
	}
	index, err := reader.ReadUInt(2, true)
	if err != nil {
		return err
	}
	siblingHashes, err := reader.ReadBytesArray(3)
	if err != nil {
		return err
	}
	p.Size = size
	p.Index = index
	p.SiblingHashes = codec.BytesArrayToHexArray(siblingHashes)
	return nil
}
