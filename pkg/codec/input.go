package codec

import "encoding/binary"

// minInputSize is the smallest possible encoded input: an outpoint, an empty
// script and a sequence number
const minInputSize = OutPointSize + 1 + 4

// TransactionInput spends a previous output
type TransactionInput struct {
	PreviousOutput  OutPoint `json:"previous_output" yaml:"previous_output"`
	SignatureScript Script   `json:"script_sig" yaml:"script_sig"`
	Sequence        uint32   `json:"sequence" yaml:"sequence"`
}

// NewTransactionInput creates an input spending previousOutput
func NewTransactionInput(previousOutput OutPoint, signatureScript Script, sequence uint32) TransactionInput {
	return TransactionInput{
		PreviousOutput:  previousOutput,
		SignatureScript: signatureScript,
		Sequence:        sequence,
	}
}

// Size returns the encoded size of the input
func (in TransactionInput) Size() int {
	return OutPointSize + in.SignatureScript.Size() + 4
}

// Encode serializes the input
// Format: [OutPoint(36)][Script][Sequence(4)]
func (in TransactionInput) Encode() []byte {
	return in.appendTo(make([]byte, 0, in.Size()))
}

func (in TransactionInput) appendTo(buf []byte) []byte {
	buf = in.PreviousOutput.appendTo(buf)
	buf = in.SignatureScript.appendTo(buf)
	return binary.LittleEndian.AppendUint32(buf, in.Sequence)
}

// DecodeTransactionInput reads an input from the start of data and returns it
// with the total number of bytes consumed
func DecodeTransactionInput(data []byte) (TransactionInput, int, error) {
	offset := 0

	previousOutput, n, err := DecodeOutPoint(data[offset:])
	if err != nil {
		return TransactionInput{}, 0, err
	}
	offset += n

	script, n, err := DecodeScript(data[offset:])
	if err != nil {
		return TransactionInput{}, 0, err
	}
	offset += n

	if len(data)-offset < 4 {
		return TransactionInput{}, 0, ErrInsufficientBytes
	}
	sequence := binary.LittleEndian.Uint32(data[offset : offset+4])
	offset += 4

	return NewTransactionInput(previousOutput, script, sequence), offset, nil
}
