package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/txwire/pkg/inspect"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a transaction document to wire format",
	Long: `Encode a JSON or YAML transaction document and print the wire encoding.

The document uses the field names of the "transaction" object printed by
"decode --format json", so a decoded transaction can be edited and encoded
again. It is read from the
file argument or from stdin. The input format comes from --input-format or
the file extension, and defaults to JSON.

Examples:
  txwire encode tx.yaml
  txwire encode --input-format yaml < tx.doc`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("file")
		if len(args) == 1 {
			path = args[0]
		}

		doc, err := readInput(cmd, path)
		if err != nil {
			return err
		}

		format, err := documentFormat(cmd, path)
		if err != nil {
			return err
		}

		encoded, err := svc.EncodeDocument(doc, format)
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetBool("raw")
		if raw {
			_, err = cmd.OutOrStdout().Write(encoded)
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%x\n", encoded)
		return err
	},
}

// documentFormat picks the input document format from --input-format or the
// input file extension
func documentFormat(cmd *cobra.Command, path string) (inspect.Format, error) {
	name, _ := cmd.Flags().GetString("input-format")
	if name == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return inspect.FormatYAML, nil
		default:
			return inspect.FormatJSON, nil
		}
	}

	switch format := inspect.Format(strings.ToLower(name)); format {
	case inspect.FormatJSON, inspect.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported input format %q (want json or yaml)", name)
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringP("file", "f", "", "Read the document from a file")
	encodeCmd.Flags().String("input-format", "", "Document format: json or yaml")
	encodeCmd.Flags().Bool("raw", false, "Write binary instead of hex")
}
