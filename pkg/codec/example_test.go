package codec_test

import (
	"fmt"
	"log"

	"github.com/ssargent/txwire/pkg/codec"
)

// ExampleCompactSize demonstrates the four CompactSize widths
func ExampleCompactSize() {
	for _, v := range []uint64{252, 253, 65536, 4294967296} {
		fmt.Printf("%d => % x\n", v, codec.NewCompactSize(v).Encode())
	}

	// Output:
	// 252 => fc
	// 253 => fd fd 00
	// 65536 => fe 00 00 01 00
	// 4294967296 => ff 00 00 00 00 01 00 00 00
}

// ExampleDecodeTransaction demonstrates decoding a transaction followed by
// unrelated bytes
func ExampleDecodeTransaction() {
	data := []byte{
		0x01, 0x00, 0x00, 0x00, // version
		0x00,                   // no inputs
		0x00, 0x00, 0x00, 0x00, // lock time
		0xCA, 0xFE, // trailing data
	}

	tx, n, err := codec.DecodeTransaction(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Version: %d\n", tx.Version)
	fmt.Printf("Inputs: %d\n", len(tx.Inputs))
	fmt.Printf("Consumed: %d of %d bytes\n", n, len(data))

	// Output:
	// Version: 1
	// Inputs: 0
	// Consumed: 9 of 11 bytes
}

// ExampleTransaction_Encode demonstrates building and printing a transaction
func ExampleTransaction_Encode() {
	input := codec.NewTransactionInput(
		codec.NewOutPoint(codec.Txid{}, 0xFFFFFFFF),
		codec.NewScript([]byte{0xAB, 0xCD}),
		0,
	)
	tx := codec.NewTransaction(1, []codec.TransactionInput{input}, 0)

	raw := tx.Encode()
	fmt.Printf("Encoded %d bytes\n", len(raw))
	fmt.Print(tx)

	// Output:
	// Encoded 52 bytes
	// Bitcoin Transaction:
	//   Version: 1
	//   Inputs: 1
	//     Input 0:
	//       Previous Output Txid: 0000000000000000000000000000000000000000000000000000000000000000
	//       Previous Output Vout: 4294967295
	//       Script Sig Length: 2
	//       Script Sig: abcd
	//       Sequence: 0x00000000
	//   Lock Time: 0
}

// ExampleDecodeScript demonstrates truncation detection
func ExampleDecodeScript() {
	// Length prefix says 10 bytes, only 3 are present
	_, _, err := codec.DecodeScript([]byte{0x0A, 0x01, 0x02, 0x03})
	fmt.Println(err)

	// Output:
	// codec: insufficient bytes
}
