package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// varintCmd represents the varint command
var varintCmd = &cobra.Command{
	Use:   "varint",
	Short: "Encode and decode CompactSize integers",
	Long:  `Encode and decode the variable length integers used for counts and lengths.`,
}

var varintEncodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Encode an unsigned integer as a CompactSize",
	Example: `  txwire varint encode 253
  txwire varint encode 0xFFFFFFFF`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[0], err)
		}

		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%x\n", svc.EncodeCompactSize(value))
		return err
	},
}

var varintDecodeCmd = &cobra.Command{
	Use:     "decode <hex>",
	Short:   "Decode a hex encoded CompactSize",
	Example: `  txwire varint decode fdfd00`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		c, n, err := svc.DecodeCompactSizeHex(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Value:     %d\n", c.Value)
		fmt.Fprintf(out, "Consumed:  %d\n", n)
		fmt.Fprintf(out, "Canonical: %t\n", n == c.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(varintCmd)
	varintCmd.AddCommand(varintEncodeCmd)
	varintCmd.AddCommand(varintDecodeCmd)
}
