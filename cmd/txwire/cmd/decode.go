package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/txwire/pkg/inspect"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode a raw transaction",
	Long: `Decode a raw transaction and print it in the selected output format.

The transaction is read as hex from the argument, from --file, or from stdin
when neither is given. With --raw the file or stdin holds the binary
encoding instead of hex.

Examples:
  txwire decode 010000000000000000
  txwire decode --file tx.hex --format table
  txwire decode --file tx.bin --raw --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		report, err := decodeInput(cmd, svc, args)
		if err != nil {
			return err
		}

		return svc.Render(cmd.OutOrStdout(), report)
	},
}

func decodeInput(cmd *cobra.Command, svc inspect.Service, args []string) (*inspect.Report, error) {
	raw, _ := cmd.Flags().GetBool("raw")
	if len(args) == 1 {
		if raw {
			return nil, fmt.Errorf("--raw cannot be used with a hex argument")
		}
		return svc.DecodeHex(args[0])
	}

	path, _ := cmd.Flags().GetString("file")
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	if raw {
		return svc.Decode(data)
	}
	return svc.DecodeHex(string(data))
}

// readInput returns the contents of path, or stdin when path is empty
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringP("file", "f", "", "Read the transaction from a file")
	decodeCmd.Flags().Bool("raw", false, "Input file or stdin holds binary rather than hex")
	decodeCmd.Flags().Bool("strict", false, "Reject input with trailing bytes after the transaction")
}
