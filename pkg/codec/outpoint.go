package codec

import "encoding/binary"

// OutPointSize is the fixed encoded size of an OutPoint
const OutPointSize = TxidSize + 4

// OutPoint references a specific output of a previous transaction
type OutPoint struct {
	Txid  Txid   `json:"txid" yaml:"txid"`
	Index uint32 `json:"vout" yaml:"vout"`
}

// NewOutPoint creates an outpoint for output index of txid
func NewOutPoint(txid Txid, index uint32) OutPoint {
	return OutPoint{Txid: txid, Index: index}
}

// Size returns the encoded size, which is always OutPointSize
func (o OutPoint) Size() int {
	return OutPointSize
}

// Encode serializes the outpoint
// Format: [Txid(32)][Index(4)]
func (o OutPoint) Encode() []byte {
	return o.appendTo(make([]byte, 0, OutPointSize))
}

func (o OutPoint) appendTo(buf []byte) []byte {
	buf = append(buf, o.Txid[:]...)
	return binary.LittleEndian.AppendUint32(buf, o.Index)
}

// DecodeOutPoint reads an outpoint from the start of data. It always consumes
// exactly OutPointSize bytes.
func DecodeOutPoint(data []byte) (OutPoint, int, error) {
	if len(data) < OutPointSize {
		return OutPoint{}, 0, ErrInsufficientBytes
	}

	txid := txidFromBytes(data[0:TxidSize])
	index := binary.LittleEndian.Uint32(data[TxidSize:OutPointSize])

	return NewOutPoint(txid, index), OutPointSize, nil
}
