package codec

import (
	"bytes"
	"encoding/hex"
)

// Script is an opaque, length-prefixed byte string. The codec never
// interprets its contents.
type Script struct {
	payload []byte
}

// NewScript creates a script holding a copy of payload
func NewScript(payload []byte) Script {
	owned := make([]byte, len(payload))
	copy(owned, payload)
	return Script{payload: owned}
}

// Bytes returns a copy of the payload
func (s Script) Bytes() []byte {
	out := make([]byte, len(s.payload))
	copy(out, s.payload)
	return out
}

// Len returns the payload length in bytes
func (s Script) Len() int {
	return len(s.payload)
}

// Equal reports whether both scripts carry the same payload
func (s Script) Equal(other Script) bool {
	return bytes.Equal(s.payload, other.payload)
}

// Size returns the encoded size: the CompactSize length prefix plus the payload
func (s Script) Size() int {
	return NewCompactSize(uint64(len(s.payload))).Size() + len(s.payload)
}

// Encode serializes the script
// Format: [Length(CompactSize)][Payload]
func (s Script) Encode() []byte {
	return s.appendTo(make([]byte, 0, s.Size()))
}

func (s Script) appendTo(buf []byte) []byte {
	buf = NewCompactSize(uint64(len(s.payload))).appendTo(buf)
	return append(buf, s.payload...)
}

// String returns the payload as lowercase hex
func (s Script) String() string {
	return hex.EncodeToString(s.payload)
}

// MarshalText implements encoding.TextMarshaler
func (s Script) MarshalText() ([]byte, error) {
	buf := make([]byte, hex.EncodedLen(len(s.payload)))
	hex.Encode(buf, s.payload)
	return buf, nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Script) UnmarshalText(text []byte) error {
	payload := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(payload, text); err != nil {
		return ErrInvalidFormat
	}
	s.payload = payload
	return nil
}

// DecodeScript reads a length-prefixed script from the start of data. A
// length prefix that claims more payload than data holds is
// ErrInsufficientBytes.
func DecodeScript(data []byte) (Script, int, error) {
	length, prefixSize, err := DecodeCompactSize(data)
	if err != nil {
		return Script{}, 0, err
	}

	// Compare against what remains so a huge length cannot overflow int
	if length.Value > uint64(len(data)-prefixSize) {
		return Script{}, 0, ErrInsufficientBytes
	}

	end := prefixSize + int(length.Value)
	return NewScript(data[prefixSize:end]), end, nil
}
