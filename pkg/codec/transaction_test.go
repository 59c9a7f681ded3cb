package codec

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func oneInputTransaction() *Transaction {
	in := NewTransactionInput(
		NewOutPoint(Txid{}, 0xFFFFFFFF),
		NewScript([]byte{0xAB, 0xCD}),
		0,
	)
	return NewTransaction(1, []TransactionInput{in}, 0)
}

func TestTransaction_EmptyTransaction(t *testing.T) {
	tx := NewTransaction(1, nil, 0)

	encoded := tx.Encode()
	assert.Equal(t, mustHex(t, "010000000000000000"), encoded)
	assert.Equal(t, 9, tx.Size())

	decoded, n, err := DecodeTransaction(encoded)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, tx, decoded)
}

func TestTransaction_OneInput(t *testing.T) {
	tx := oneInputTransaction()

	encoded := tx.Encode()
	require.Len(t, encoded, 4+1+36+(1+2)+4+4)

	expected := "01000000" + // version
		"01" + // input count
		"0000000000000000000000000000000000000000000000000000000000000000" + // txid
		"ffffffff" + // vout
		"02abcd" + // script
		"00000000" + // sequence
		"00000000" // lock time
	assert.Equal(t, expected, hex.EncodeToString(encoded))

	decoded, n, err := DecodeTransaction(encoded)
	require.NoError(t, err)
	assert.Equal(t, 52, n)
	assert.Equal(t, tx, decoded)
}

func TestTransaction_InputOrderAndDuplicates(t *testing.T) {
	a := NewTransactionInput(NewOutPoint(Txid{1}, 0), NewScript([]byte{0x01}), 1)
	b := NewTransactionInput(NewOutPoint(Txid{2}, 1), NewScript(nil), 2)
	tx := NewTransaction(2, []TransactionInput{b, a, b}, 500000)

	decoded, n, err := DecodeTransaction(tx.Encode())
	require.NoError(t, err)
	assert.Equal(t, tx.Size(), n)
	require.Len(t, decoded.Inputs, 3)
	assert.Equal(t, b, decoded.Inputs[0])
	assert.Equal(t, a, decoded.Inputs[1])
	assert.Equal(t, b, decoded.Inputs[2])
	assert.Equal(t, uint32(500000), decoded.LockTime)
}

func TestTransaction_ManyInputsUseWideCount(t *testing.T) {
	inputs := make([]TransactionInput, 300)
	for i := range inputs {
		inputs[i] = NewTransactionInput(NewOutPoint(Txid{byte(i)}, uint32(i)), NewScript([]byte{byte(i)}), uint32(i))
	}
	tx := NewTransaction(1, inputs, 0)

	encoded := tx.Encode()
	assert.Equal(t, []byte{0xFD, 0x2C, 0x01}, encoded[4:7])

	decoded, n, err := DecodeTransaction(encoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, tx, decoded)
}

func TestTransaction_TrailingBytesTolerated(t *testing.T) {
	tx := oneInputTransaction()
	data := append(tx.Encode(), 0xDE, 0xAD, 0xBE, 0xEF)

	decoded, n, err := DecodeTransaction(data)
	require.NoError(t, err)
	assert.Less(t, n, len(data))
	assert.Equal(t, 52, n)
	assert.Equal(t, tx, decoded)
}

func TestTransaction_DecodeEveryTruncation(t *testing.T) {
	encoded := oneInputTransaction().Encode()

	for size := 0; size < len(encoded); size++ {
		tx, n, err := DecodeTransaction(encoded[:size])
		assert.ErrorIs(t, err, ErrInsufficientBytes, "truncated to %d bytes", size)
		assert.Nil(t, tx)
		assert.Zero(t, n)
	}
}

func TestTransaction_DecodeHostileInputCount(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"u64 max count, no inputs", "01000000" + "ffffffffffffffffff" + "00000000"},
		{"u32 max count, no inputs", "01000000" + "feffffffff"},
		{"count two, one input present", "01000000" + "02" +
			"0000000000000000000000000000000000000000000000000000000000000000" +
			"00000000" + "00" + "00000000" + "00000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeTransaction(mustHex(t, tc.data))
			assert.Equal(t, ErrInsufficientBytes, err)
		})
	}
}

func TestTransaction_DecodeNonMinimalCount(t *testing.T) {
	data := mustHex(t, "01000000"+"fd0000"+"07000000")

	tx, n, err := DecodeTransaction(data)
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Empty(t, tx.Inputs)
	assert.Equal(t, uint32(7), tx.LockTime)

	// Re-encoding yields the canonical form
	assert.Equal(t, mustHex(t, "010000000007000000"), tx.Encode())
}

func TestNewTransaction_CopiesInputs(t *testing.T) {
	inputs := []TransactionInput{oneInputTransaction().Inputs[0]}
	tx := NewTransaction(1, inputs, 0)
	inputs[0].Sequence = 99

	assert.Equal(t, uint32(0), tx.Inputs[0].Sequence)
}

func TestTransaction_String(t *testing.T) {
	tx := oneInputTransaction()

	expected := "Bitcoin Transaction:\n" +
		"  Version: 1\n" +
		"  Inputs: 1\n" +
		"    Input 0:\n" +
		"      Previous Output Txid: 0000000000000000000000000000000000000000000000000000000000000000\n" +
		"      Previous Output Vout: 4294967295\n" +
		"      Script Sig Length: 2\n" +
		"      Script Sig: abcd\n" +
		"      Sequence: 0x00000000\n" +
		"  Lock Time: 0\n"
	assert.Equal(t, expected, tx.String())
}

func TestTransaction_StructuredForms(t *testing.T) {
	tx := NewTransaction(2, []TransactionInput{
		NewTransactionInput(NewOutPoint(sampleTxid(t), 3), NewScript([]byte{0x51}), 0xFFFFFFFF),
	}, 101)

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(tx)
		require.NoError(t, err)

		expected := `{"version":2,"inputs":[{"previous_output":{"txid":"` + sampleTxidHex +
			`","vout":3},"script_sig":"51","sequence":4294967295}],"lock_time":101}`
		assert.JSONEq(t, expected, string(data))

		var decoded Transaction
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, tx, &decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(tx)
		require.NoError(t, err)

		var decoded Transaction
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, tx, &decoded)
	})
}
