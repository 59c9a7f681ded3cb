package codec

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

var compactSizeTests = []struct {
	name    string
	value   uint64
	encoded []byte
}{
	{"zero", 0, []byte{0x00}},
	{"one", 1, []byte{0x01}},
	{"largest single byte", 252, []byte{0xFC}},
	{"smallest u16", 253, []byte{0xFD, 0xFD, 0x00}},
	{"u16 mid", 0x1234, []byte{0xFD, 0x34, 0x12}},
	{"largest u16", 65535, []byte{0xFD, 0xFF, 0xFF}},
	{"smallest u32", 65536, []byte{0xFE, 0x00, 0x00, 0x01, 0x00}},
	{"largest u32", math.MaxUint32, []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF}},
	{"smallest u64", 4294967296, []byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
	{"largest u64", math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
}

func TestCompactSize_Encode(t *testing.T) {
	for _, tc := range compactSizeTests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCompactSize(tc.value)

			encoded := c.Encode()
			if !bytes.Equal(encoded, tc.encoded) {
				t.Errorf("Encode(%d) = %x, want %x", tc.value, encoded, tc.encoded)
			}

			if c.Size() != len(tc.encoded) {
				t.Errorf("Size(%d) = %d, want %d", tc.value, c.Size(), len(tc.encoded))
			}
		})
	}
}

func TestCompactSize_Decode(t *testing.T) {
	for _, tc := range compactSizeTests {
		t.Run(tc.name, func(t *testing.T) {
			decoded, n, err := DecodeCompactSize(tc.encoded)
			if err != nil {
				t.Fatalf("DecodeCompactSize(%x) failed: %v", tc.encoded, err)
			}

			if decoded.Value != tc.value {
				t.Errorf("value mismatch: got %d, want %d", decoded.Value, tc.value)
			}

			if n != len(tc.encoded) {
				t.Errorf("consumed mismatch: got %d, want %d", n, len(tc.encoded))
			}
		})
	}
}

func TestCompactSize_DecodeIgnoresTrailingBytes(t *testing.T) {
	data := []byte{0xFD, 0x00, 0x01, 0xAA, 0xBB}

	decoded, n, err := DecodeCompactSize(data)
	if err != nil {
		t.Fatalf("DecodeCompactSize failed: %v", err)
	}
	if decoded.Value != 256 {
		t.Errorf("value mismatch: got %d, want 256", decoded.Value)
	}
	if n != 3 {
		t.Errorf("consumed mismatch: got %d, want 3", n)
	}
}

func TestCompactSize_DecodeNonMinimal(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		value    uint64
		consumed int
	}{
		{"u16 marker for 10", []byte{0xFD, 0x0A, 0x00}, 10, 3},
		{"u32 marker for 10", []byte{0xFE, 0x0A, 0x00, 0x00, 0x00}, 10, 5},
		{"u64 marker for 253", []byte{0xFF, 0xFD, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, 253, 9},
		{"u32 marker for zero", []byte{0xFE, 0x00, 0x00, 0x00, 0x00}, 0, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, n, err := DecodeCompactSize(tc.data)
			if err != nil {
				t.Fatalf("non-minimal form rejected: %v", err)
			}
			if decoded.Value != tc.value {
				t.Errorf("value mismatch: got %d, want %d", decoded.Value, tc.value)
			}
			if n != tc.consumed {
				t.Errorf("consumed mismatch: got %d, want %d", n, tc.consumed)
			}
		})
	}
}

func TestCompactSize_DecodeInsufficientBytes(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"u16 marker only", []byte{0xFD}},
		{"u16 one byte short", []byte{0xFD, 0x01}},
		{"u32 marker only", []byte{0xFE}},
		{"u32 one byte short", []byte{0xFE, 0x01, 0x02, 0x03}},
		{"u64 marker only", []byte{0xFF}},
		{"u64 one byte short", []byte{0xFF, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, n, err := DecodeCompactSize(tc.data)
			if !errors.Is(err, ErrInsufficientBytes) {
				t.Fatalf("expected ErrInsufficientBytes, got %v", err)
			}
			if n != 0 {
				t.Errorf("consumed should be 0 on failure, got %d", n)
			}
		})
	}
}

func TestCompactSize_CanonicalAcrossBoundaries(t *testing.T) {
	boundaries := []uint64{
		0, 1, 0xFB, 0xFC, 0xFD, 0xFE, 0xFF, 0x100,
		0xFFFE, 0xFFFF, 0x10000, 0x10001,
		0xFFFFFFFE, 0xFFFFFFFF, 0x100000000, 0x100000001,
		math.MaxUint64 - 1, math.MaxUint64,
	}

	for _, v := range boundaries {
		encoded := NewCompactSize(v).Encode()

		// The chosen width must be the smallest class able to hold v
		var want int
		switch {
		case v <= 0xFC:
			want = 1
		case v <= 0xFFFF:
			want = 3
		case v <= 0xFFFFFFFF:
			want = 5
		default:
			want = 9
		}
		if len(encoded) != want {
			t.Errorf("value %d encoded in %d bytes, want %d", v, len(encoded), want)
		}

		decoded, n, err := DecodeCompactSize(encoded)
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", v, err)
		}
		if decoded.Value != v || n != len(encoded) {
			t.Errorf("round trip of %d gave (%d, %d)", v, decoded.Value, n)
		}
	}
}
