package inspect

import "fmt"

// Format selects how reports are rendered
type Format string

// Supported output formats
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
	FormatDump  Format = "dump"
)

// ParseFormat converts a format name to a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatTable, FormatDump:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", s)
	}
}
