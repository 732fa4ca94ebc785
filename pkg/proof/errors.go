package proof

import "errors"

var (
	// ErrInvalidProof is returned when the block hash is not the commitment of the proof content.
	ErrInvalidProof = errors.New("invalid proof")
	// ErrUnknownTransactionKind is returned for a transaction discriminant which is not defined.
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")
	// ErrUnsupportedVersion is returned when decoding a proof encoded with another layout version.
	ErrUnsupportedVersion = errors.New("unsupported proof encoding version")
	// ErrInvalidString is returned when a transaction string cannot be encoded byte exactly.
	ErrInvalidString = errors.New("string must be NFC normalized UTF-8")
)
