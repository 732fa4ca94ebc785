// Package codec implements the binary serialization used for proofs and lock records.
//
// The layout follows protobuf wire rules restricted to two wire types:
// varint (unsigned, or zigzag for signed values) and length-prefixed bytes.
// Every field is always written in ascending field number order, and strict
// decoding rejects missing, reordered or unknown fields, non-minimal varints
// and trailing bytes, so a value has exactly one encoding.
package codec

// Encodable is interface for struct which is encodable.
type Encodable interface {
	Encode() []byte
}

// Decodable is interface for struct which is decodable.
type Decodable interface {
	Decode([]byte) error
}

// DecodableReader is interface for struct which can be decoded from a nested reader.
type DecodableReader interface {
	DecodeFromReader(*Reader) error
}

// EncodeDecodable can encode and decode.
type EncodeDecodable interface {
	Encodable
	Decodable
	DecodableReader
}
