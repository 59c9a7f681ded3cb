package codec

import (
	"fmt"
	"strings"
)

// String renders the transaction as indented human-readable text
func (tx *Transaction) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bitcoin Transaction:\n")
	fmt.Fprintf(&b, "  Version: %d\n", tx.Version)
	fmt.Fprintf(&b, "  Inputs: %d\n", len(tx.Inputs))

	for i, in := range tx.Inputs {
		fmt.Fprintf(&b, "    Input %d:\n", i)
		fmt.Fprintf(&b, "      Previous Output Txid: %s\n", in.PreviousOutput.Txid)
		fmt.Fprintf(&b, "      Previous Output Vout: %d\n", in.PreviousOutput.Index)
		fmt.Fprintf(&b, "      Script Sig Length: %d\n", in.SignatureScript.Len())
		fmt.Fprintf(&b, "      Script Sig: %s\n", in.SignatureScript)
		fmt.Fprintf(&b, "      Sequence: 0x%08X\n", in.Sequence)
	}

	fmt.Fprintf(&b, "  Lock Time: %d\n", tx.LockTime)

	return b.String()
}
