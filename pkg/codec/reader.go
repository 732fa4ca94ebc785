package codec

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	msb8Bit  = 0x80
	rest8Bit = 0x7f
)

// Reader reads fields sequentially from data[index:end].
type Reader struct {
	index int
	end   int
	data  []byte
}

// NewReader returns reader with the data given.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:  data,
		index: 0,
		end:   len(data),
	}
}

// ReadUInt reads uint if the field number matches.
// When strict is false, a missing field yields zero value without error.
func (r *Reader) ReadUInt(fieldNumber int, strict bool) (uint64, error) {
	ok, err := r.checkField(fieldNumber, wireTypeVarint, strict)
	if err != nil || !ok {
		return 0, err
	}
	return r.readUInt()
}

// ReadInt reads zigzag encoded int if the field number matches.
func (r *Reader) ReadInt(fieldNumber int, strict bool) (int64, error) {
	ok, err := r.checkField(fieldNumber, wireTypeVarint, strict)
	if err != nil || !ok {
		return 0, err
	}
	return r.readInt()
}

// ReadInt32 reads zigzag encoded int32 if the field number matches and the value fits 32 bits.
func (r *Reader) ReadInt32(fieldNumber int, strict bool) (int32, error) {
	val, err := r.ReadInt(fieldNumber, strict)
	if err != nil {
		return 0, err
	}
	if val > math.MaxInt32 || val < math.MinInt32 {
		return 0, fmt.Errorf("field %d: %w", fieldNumber, ErrOutOfRange)
	}
	return int32(val), nil
}

// ReadBytes reads []byte if the field number matches.
func (r *Reader) ReadBytes(fieldNumber int, strict bool) ([]byte, error) {
	ok, err := r.checkField(fieldNumber, wireTypeBytes, strict)
	if err != nil || !ok {
		return []byte{}, err
	}
	return r.readBytes()
}

// ReadBytesArray reads consecutive bytes fields with the same field number.
func (r *Reader) ReadBytesArray(fieldNumber int) ([][]byte, error) {
	result := [][]byte{}
	for r.index < r.end {
		ok, err := r.checkField(fieldNumber, wireTypeBytes, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		val, err := r.readBytes()
		if err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, nil
}

// ReadString reads NFC normalized UTF-8 string if the field number matches.
func (r *Reader) ReadString(fieldNumber int, strict bool) (string, error) {
	ok, err := r.checkField(fieldNumber, wireTypeBytes, strict)
	if err != nil || !ok {
		return "", err
	}
	result, err := r.readBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(result) || !norm.NFC.IsNormal(result) {
		return "", fmt.Errorf("field %d: %w", fieldNumber, ErrInvalidString)
	}
	return string(result), nil
}

// ReadDecodable reads a nested struct if the field number matches.
// The nested bytes must be consumed entirely by val.
func (r *Reader) ReadDecodable(fieldNumber int, val DecodableReader, strict bool) error {
	ok, err := r.checkField(fieldNumber, wireTypeBytes, strict)
	if err != nil || !ok {
		return err
	}
	return r.readDecodable(val)
}

// ReadDecodables reads consecutive nested structs with the same field number.
func ReadDecodables[T DecodableReader](r *Reader, fieldNumber int, creator func() T) ([]T, error) {
	result := []T{}
	for r.index < r.end {
		ok, err := r.checkField(fieldNumber, wireTypeBytes, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		val := creator()
		if err := r.readDecodable(val); err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, nil
}

// HasUnreadBytes returns true if data remains after the last read field.
func (r *Reader) HasUnreadBytes() bool {
	return r.index != r.end
}

func (r *Reader) readDecodable(val DecodableReader) error {
	size, err := r.readUInt()
	if err != nil {
		return err
	}
	if size > uint64(r.end-r.index) {
		return fmt.Errorf("invalid nested size %d. Remaining data length is %d", size, r.end-r.index)
	}
	nested := &Reader{
		data:  r.data,
		index: r.index,
		end:   r.index + int(size),
	}
	if err := val.DecodeFromReader(nested); err != nil {
		return err
	}
	if nested.HasUnreadBytes() {
		return ErrUnreadBytes
	}
	r.index = nested.end
	return nil
}

func (r *Reader) readUInt() (uint64, error) {
	result, size, err := readUint(r.data[:r.end], r.index)
	if err != nil {
		return 0, err
	}
	r.index += size
	return result, nil
}

func (r *Reader) readInt() (int64, error) {
	res, err := r.readUInt()
	if err != nil {
		return 0, err
	}
	return int64(res>>1) ^ -int64(res&1), nil
}

func (r *Reader) readBytes() ([]byte, error) {
	size, err := r.readUInt()
	if err != nil {
		return nil, err
	}
	remaining := r.end - r.index
	if size > uint64(remaining) {
		return nil, fmt.Errorf("invalid byte size %d. Remaining data length is %d", size, remaining)
	}
	result := make([]byte, int(size))
	copy(result, r.data[r.index:r.index+int(size)])
	r.index += int(size)
	return result, nil
}

// checkField consumes the key if it matches fieldNumber.
// It returns false without error when the field is absent and strict is false.
func (r *Reader) checkField(fieldNumber, wireType int, strict bool) (bool, error) {
	ok, err := r.check(fieldNumber, wireType)
	if err == nil {
		return ok, nil
	}
	if isMissingField(err) && !strict {
		return false, nil
	}
	return false, fmt.Errorf("field %d: %w", fieldNumber, err)
}

func (r *Reader) check(fieldNumber, wireType int) (bool, error) {
	if r.index >= r.end {
		return false, ErrFieldNumberNotFound
	}
	key, size, err := readUint(r.data[:r.end], r.index)
	if err != nil {
		return false, err
	}
	nextFieldNumber, nextWireType, err := readKey(key)
	if err != nil {
		return false, err
	}
	if nextFieldNumber != fieldNumber {
		return false, ErrUnexpectedFieldNumber
	}
	if nextWireType != wireType {
		return false, ErrInvalidData
	}
	r.index += size
	return true, nil
}

func readUint(data []byte, offset int) (uint64, int, error) {
	result := uint64(0)
	index := offset
	for shift := 0; shift < 64; shift += 7 {
		if index >= len(data) {
			return 0, 0, ErrInvalidData
		}
		bit := uint64(data[index])
		index++
		if index == offset+10 && bit > 0x01 {
			return 0, 0, ErrOutOfRange
		}
		result |= (bit & rest8Bit) << shift
		if (bit & msb8Bit) == 0 {
			if varintShortestSize(result) != index-offset {
				return 0, 0, ErrUnnecessaryLeadingBytes
			}
			return result, index - offset, nil
		}
	}
	return 0, 0, ErrNoTerminate
}

func isMissingField(err error) bool {
	return errors.Is(err, ErrFieldNumberNotFound) || errors.Is(err, ErrUnexpectedFieldNumber)
}

func varintShortestSize(data uint64) int {
	size := 1
	for data >= msb8Bit {
		data >>= 7
		size++
	}
	return size
}
