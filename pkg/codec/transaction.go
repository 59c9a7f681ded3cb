package codec

import "encoding/binary"

// Transaction is the modeled transaction: a version, ordered inputs and a lock
// time
type Transaction struct {
	Version  uint32             `json:"version" yaml:"version"`
	Inputs   []TransactionInput `json:"inputs" yaml:"inputs"`
	LockTime uint32             `json:"lock_time" yaml:"lock_time"`
}

// NewTransaction creates a transaction owning a copy of inputs
func NewTransaction(version uint32, inputs []TransactionInput, lockTime uint32) *Transaction {
	owned := make([]TransactionInput, len(inputs))
	copy(owned, inputs)
	return &Transaction{
		Version:  version,
		Inputs:   owned,
		LockTime: lockTime,
	}
}

// Size returns the total encoded size of the transaction
func (tx *Transaction) Size() int {
	// Version(4) + input count + inputs + LockTime(4)
	size := 4 + NewCompactSize(uint64(len(tx.Inputs))).Size() + 4
	for _, in := range tx.Inputs {
		size += in.Size()
	}
	return size
}

// Encode serializes the transaction
// Format: [Version(4)][InputCount(CompactSize)][Inputs...][LockTime(4)]
func (tx *Transaction) Encode() []byte {
	buf := make([]byte, 0, tx.Size())

	buf = binary.LittleEndian.AppendUint32(buf, tx.Version)
	buf = NewCompactSize(uint64(len(tx.Inputs))).appendTo(buf)
	for _, in := range tx.Inputs {
		buf = in.appendTo(buf)
	}
	return binary.LittleEndian.AppendUint32(buf, tx.LockTime)
}

// DecodeTransaction reads a transaction from the start of data and returns it
// with the number of bytes consumed. Bytes after the lock time are left
// alone, so the count may be less than len(data).
func DecodeTransaction(data []byte) (*Transaction, int, error) {
	if len(data) < 4 {
		return nil, 0, ErrInsufficientBytes
	}
	version := binary.LittleEndian.Uint32(data[0:4])
	offset := 4

	count, n, err := DecodeCompactSize(data[offset:])
	if err != nil {
		return nil, 0, err
	}
	offset += n

	// The count is untrusted; never reserve more inputs than the remaining
	// bytes could hold.
	capacity := count.Value
	if limit := uint64((len(data) - offset) / minInputSize); capacity > limit {
		capacity = limit
	}
	inputs := make([]TransactionInput, 0, capacity)

	for i := uint64(0); i < count.Value; i++ {
		in, n, err := DecodeTransactionInput(data[offset:])
		if err != nil {
			return nil, 0, err
		}
		inputs = append(inputs, in)
		offset += n
	}

	if len(data)-offset < 4 {
		return nil, 0, ErrInsufficientBytes
	}
	lockTime := binary.LittleEndian.Uint32(data[offset : offset+4])
	offset += 4

	return &Transaction{
		Version:  version,
		Inputs:   inputs,
		LockTime: lockTime,
	}, offset, nil
}
