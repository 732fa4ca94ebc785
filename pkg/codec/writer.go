package codec

import (
	"encoding/binary"
)

// Writer accumulates encoded fields.
type Writer struct {
	result []byte
}

// NewWriter returns a new instances of a writer.
func NewWriter() *Writer {
	return &Writer{
		result: []byte{},
	}
}

// WriteBytes writes a length-prefixed bytes field.
func (w *Writer) WriteBytes(fieldNumber int, data []byte) {
	w.result = appendKey(w.result, wireTypeBytes, fieldNumber)
	w.writeBytes(data)
}

// WriteBytesArray writes one bytes field per element.
func (w *Writer) WriteBytesArray(fieldNumber int, data [][]byte) {
	for _, val := range data {
		w.WriteBytes(fieldNumber, val)
	}
}

// WriteString writes the UTF-8 bytes of data as is.
// Callers are responsible for passing NFC normalized strings, otherwise the reader rejects them.
func (w *Writer) WriteString(fieldNumber int, data string) {
	w.WriteBytes(fieldNumber, []byte(data))
}

// WriteUInt writes uint to result.
func (w *Writer) WriteUInt(fieldNumber int, data uint64) {
	w.result = appendKey(w.result, wireTypeVarint, fieldNumber)
	w.result = binary.AppendUvarint(w.result, data)
}

// WriteInt writes zigzag encoded int to result.
func (w *Writer) WriteInt(fieldNumber int, data int64) {
	w.result = appendKey(w.result, wireTypeVarint, fieldNumber)
	w.result = binary.AppendVarint(w.result, data)
}

// WriteInt32 writes zigzag encoded int32 to result.
func (w *Writer) WriteInt32(fieldNumber int, data int32) {
	w.WriteInt(fieldNumber, int64(data))
}

// WriteEncodable writes encodable struct as a nested field.
func (w *Writer) WriteEncodable(fieldNumber int, data Encodable) {
	if data == nil {
		return
	}
	w.WriteBytes(fieldNumber, data.Encode())
}

// WriteEncodables writes each element as a nested field with the same field number.
func WriteEncodables[T Encodable](w *Writer, fieldNumber int, data []T) {
	for _, val := range data {
		w.WriteEncodable(fieldNumber, val)
	}
}

// Result returns the written bytes.
func (w *Writer) Result() []byte {
	return w.result
}

// Size returns written size.
func (w *Writer) Size() int {
	return len(w.result)
}

func (w *Writer) writeBytes(data []byte) {
	w.result = binary.AppendUvarint(w.result, uint64(len(data)))
	w.result = append(w.result, data...)
}
