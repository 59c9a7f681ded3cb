// Package codec provides binary serialization and deserialization of
// Bitcoin-style transactions for txwire.
//
// The codec implements a subset of the Bitcoin transaction wire format: a
// transaction carries a version, an ordered list of inputs and a lock time.
// Outputs and witness data are not part of the modeled format.
//
// # Wire Format
//
// All multi-byte integers are little-endian:
//
//	Transaction      := version:u32 | inputCount:CompactSize | input{inputCount} | lockTime:u32
//	TransactionInput := previousOutput:OutPoint | scriptSig:Script | sequence:u32
//	OutPoint         := txid:bytes[32] | index:u32
//	Script           := length:CompactSize | payload:bytes[length]
//
// # CompactSize
//
// Variable-length fields are prefixed with a CompactSize integer. The first
// byte selects one of four widths:
//
//	0x00..0xFC  value is the byte itself          (1 byte)
//	0xFD        value is the following u16le      (3 bytes)
//	0xFE        value is the following u32le      (5 bytes)
//	0xFF        value is the following u64le      (9 bytes)
//
// Encoding always picks the shortest width. Decoding accepts whatever width
// the marker byte announces, so a non-minimal form such as FD 0A 00 decodes
// to 10.
//
// # Usage
//
//	tx := codec.NewTransaction(1, []codec.TransactionInput{input}, 0)
//	raw := tx.Encode()
//
//	decoded, n, err := codec.DecodeTransaction(raw)
//	if err != nil {
//	    return err
//	}
//	// n is the number of bytes consumed; raw[n:] holds any trailing data.
//
// Every Decode function takes a byte slice positioned at the start of the
// value and returns the value together with the number of bytes it consumed.
// Composite decoders are straight sequences of these calls, which lets each
// one be tested in isolation on an arbitrary slice.
//
// # Error Handling
//
// Decoding fails with one of two sentinel errors:
//   - ErrInsufficientBytes: the buffer ends before the current field does
//   - ErrInvalidFormat: a text form does not describe a valid value
//
// The first failure at any nesting level is returned unchanged to the
// top-level caller, so callers may compare with == or errors.Is. No partial
// values are returned. Trailing bytes after a complete transaction are not an
// error; the caller decides what to do with them.
//
// # Thread Safety
//
// All functions are pure. Values are not mutated after construction and are
// safe to share between goroutines.
package codec
