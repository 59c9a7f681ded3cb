package codec

import "encoding/hex"

// TxidSize is the length of a transaction identifier in bytes
const TxidSize = 32

// Txid identifies a transaction. The bytes are stored and encoded exactly as
// given; the text form is the hex of those bytes with no reversal.
type Txid [TxidSize]byte

// ParseTxid builds a Txid from its 64-character hex form
func ParseTxid(s string) (Txid, error) {
	var id Txid
	if err := id.UnmarshalText([]byte(s)); err != nil {
		return Txid{}, err
	}
	return id, nil
}

// String returns the lowercase hex form of the bytes in wire order. It is not
// reversed the way block explorers display transaction ids.
func (id Txid) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler
func (id Txid) MarshalText() ([]byte, error) {
	buf := make([]byte, hex.EncodedLen(TxidSize))
	hex.Encode(buf, id[:])
	return buf, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Anything that is not hex
// or does not decode to exactly 32 bytes is ErrInvalidFormat.
func (id *Txid) UnmarshalText(text []byte) error {
	if hex.DecodedLen(len(text)) != TxidSize {
		return ErrInvalidFormat
	}
	var decoded Txid
	if _, err := hex.Decode(decoded[:], text); err != nil {
		return ErrInvalidFormat
	}
	*id = decoded
	return nil
}

// txidFromBytes copies the first 32 bytes of data. The caller has already
// checked the length.
func txidFromBytes(data []byte) Txid {
	var id Txid
	copy(id[:], data[:TxidSize])
	return id
}
