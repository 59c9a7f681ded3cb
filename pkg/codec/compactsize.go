package codec

import (
	"encoding/binary"
	"math"
)

// CompactSize marker bytes for the multi-byte forms
const (
	compactSize16 = 0xFD
	compactSize32 = 0xFE
	compactSize64 = 0xFF
)

// MaxCompactSizeBytes is the longest possible CompactSize encoding
const MaxCompactSizeBytes = 9

// CompactSize is a variable-length unsigned integer used to prefix counts and
// lengths on the wire
type CompactSize struct {
	Value uint64
}

// NewCompactSize wraps a raw value
func NewCompactSize(value uint64) CompactSize {
	return CompactSize{Value: value}
}

// Size returns the length of the canonical encoding: 1, 3, 5 or 9 bytes
func (c CompactSize) Size() int {
	switch {
	case c.Value < compactSize16:
		return 1
	case c.Value <= math.MaxUint16:
		return 3
	case c.Value <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// Encode serializes the value using the shortest form that can hold it
func (c CompactSize) Encode() []byte {
	return c.appendTo(make([]byte, 0, c.Size()))
}

func (c CompactSize) appendTo(buf []byte) []byte {
	v := c.Value
	switch {
	case v < compactSize16:
		return append(buf, byte(v))
	case v <= math.MaxUint16:
		buf = append(buf, compactSize16)
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case v <= math.MaxUint32:
		buf = append(buf, compactSize32)
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	default:
		buf = append(buf, compactSize64)
		return binary.LittleEndian.AppendUint64(buf, v)
	}
}

// DecodeCompactSize reads a CompactSize from the start of data and returns it
// with the number of bytes consumed. The width is taken from the marker byte
// as-is; non-minimal encodings are accepted.
func DecodeCompactSize(data []byte) (CompactSize, int, error) {
	if len(data) < 1 {
		return CompactSize{}, 0, ErrInsufficientBytes
	}

	switch marker := data[0]; marker {
	case compactSize16:
		if len(data) < 3 {
			return CompactSize{}, 0, ErrInsufficientBytes
		}
		return NewCompactSize(uint64(binary.LittleEndian.Uint16(data[1:3]))), 3, nil
	case compactSize32:
		if len(data) < 5 {
			return CompactSize{}, 0, ErrInsufficientBytes
		}
		return NewCompactSize(uint64(binary.LittleEndian.Uint32(data[1:5]))), 5, nil
	case compactSize64:
		if len(data) < 9 {
			return CompactSize{}, 0, ErrInsufficientBytes
		}
		return NewCompactSize(binary.LittleEndian.Uint64(data[1:9])), 9, nil
	default:
		return NewCompactSize(uint64(marker)), 1, nil
	}
}
