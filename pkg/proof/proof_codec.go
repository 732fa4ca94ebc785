package proof

import (
	"fmt"
	"math"

	"github.com/LiskHQ/lisk-bridge/pkg/codec"
)

// EncodingVersion is the layout version written as the first field of an encoded proof.
const EncodingVersion uint64 = 1

// Encode returns the proof in bytes.
//
//	Proof       { 1: version uint, 2: prevBlockHash bytes, 3: blockHash bytes, 4: transactions []Transaction }
//	Transaction { 1: kind uint, 2: body bytes }
//	HashOnly           body { 1: hash string }
//	CrossChainTransfer body { 1: who string, 2: amount sint, 3: destChainID uint }
func (p *Proof) Encode() []byte {
	writer := codec.NewWriter()
	writer.WriteUInt(1, EncodingVersion)
	writer.WriteBytes(2, p.prevBlockHash)
	writer.WriteBytes(3, p.blockHash)
	codec.WriteEncodables(writer, 4, p.transactions)
	return writer.Result()
}

// DecodeProof returns the proof decoded strictly from data.
func DecodeProof(data []byte) (*Proof, error) {
	p := &Proof{}
	if err := p.Decode(data); err != nil {
		return nil, err
	}
	return p, nil
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
	version, err := reader.ReadUInt(1, true)
	if err != nil {
		return err
	}
	if version != EncodingVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	prevBlockHash, err := reader.ReadBytes(2, true)
	if err != nil {
		return err
	}
	blockHash, err := reader.ReadBytes(3, true)
	if err != nil {
		return err
	}
	envelopes, err := codec.ReadDecodables(reader, 4, func() *transactionEnvelope { return &transactionEnvelope{} })
	if err != nil {
		return err
	}
	transactions := make([]Transaction, len(envelopes))
	for i, envelope := range envelopes {
		transactions[i] = envelope.tx
	}
	p.prevBlockHash = prevBlockHash
	p.blockHash = blockHash
	p.transactions = transactions
	return nil
}

// DecodeTransaction returns a transaction decoded strictly from data.
func DecodeTransaction(data []byte) (Transaction, error) {
	reader := codec.NewReader(data)
	envelope := &transactionEnvelope{}
	if err := envelope.DecodeFromReader(reader); err != nil {
		return nil, err
	}
	if reader.HasUnreadBytes() {
		return nil, codec.ErrUnreadBytes
	}
	return envelope.tx, nil
}

func encodeTransaction(tx Transaction) []byte {
	writer := codec.NewWriter()
	writer.WriteUInt(1, uint64(tx.Kind()))
	writer.WriteBytes(2, tx.encodeBody())
	return writer.Result()
}

type transactionEnvelope struct {
	tx Transaction
}

func (e *transactionEnvelope) DecodeFromReader(reader *codec.Reader) error {
	kind, err := reader.ReadUInt(1, true)
	if err != nil {
		return err
	}
	body, err := reader.ReadBytes(2, true)
	if err != nil {
		return err
	}
	bodyReader := codec.NewReader(body)
	switch TransactionKind(kind) {
	case KindHash:
		e.tx, err = decodeHashOnly(bodyReader)
	case KindCrossChainTransfer:
		e.tx, err = decodeCrossChainTransfer(bodyReader)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTransactionKind, kind)
	}
	if err != nil {
		return fmt.Errorf("decoding %s transaction: %w", TransactionKind(kind), err)
	}
	if bodyReader.HasUnreadBytes() {
		return codec.ErrUnreadBytes
	}
	return nil
}

func decodeHashOnly(reader *codec.Reader) (HashOnly, error) {
	hash, err := reader.ReadString(1, true)
	if err != nil {
		return HashOnly{}, err
	}
	return NewHashOnly(hash), nil
}

func decodeCrossChainTransfer(reader *codec.Reader) (CrossChainTransfer, error) {
	who, err := reader.ReadString(1, true)
	if err != nil {
		return CrossChainTransfer{}, err
	}
	amount, err := reader.ReadInt32(2, true)
	if err != nil {
		return CrossChainTransfer{}, err
	}
	destChainID, err := reader.ReadUInt(3, true)
	if err != nil {
		return CrossChainTransfer{}, err
	}
	if destChainID > math.MaxUint8 {
		return CrossChainTransfer{}, fmt.Errorf("destChainID %d: %w", destChainID, codec.ErrOutOfRange)
	}
	return NewCrossChainTransfer(who, amount, uint8(destChainID)), nil
}
