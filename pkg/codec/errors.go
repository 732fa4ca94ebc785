package codec

import "errors"

var (
	// ErrInvalidData represents general invalid data.
	ErrInvalidData = errors.New("invalid data")
	// ErrOutOfRange represents a varint exceeding 64 bits or a value exceeding its declared width.
	ErrOutOfRange = errors.New("out of range")
	// ErrNoTerminate represents a varint without terminating byte.
	ErrNoTerminate = errors.New("no terminating bit found")
	// ErrUnexpectedFieldNumber represents field number not matching expected value.
	ErrUnexpectedFieldNumber = errors.New("unexpected field number found")
	// ErrFieldNumberNotFound represents a required field missing at the end of data.
	ErrFieldNumberNotFound = errors.New("expected field number does not exist")
	// ErrUnreadBytes represents extra bytes not read.
	ErrUnreadBytes = errors.New("unread bytes exist")
	// ErrUnnecessaryLeadingBytes represents a varint which is not minimally encoded.
	ErrUnnecessaryLeadingBytes = errors.New("varint has unnecessary leading bytes")
	// ErrInvalidString represents a string which is not valid NFC normalized UTF-8.
	ErrInvalidString = errors.New("string is not NFC normalized UTF-8")
)
