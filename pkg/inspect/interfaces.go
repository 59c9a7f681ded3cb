// Package inspect decodes, encodes and renders transactions for the txwire
// command line.
package inspect

import (
	"io"

	"github.com/ssargent/txwire/pkg/codec"
	"github.com/ssargent/txwire/pkg/metrics"
)

// Service defines the operations the command line drives
type Service interface {
	// Decode decodes a raw transaction
	Decode(data []byte) (*Report, error)

	// DecodeHex decodes a hex encoded transaction
	DecodeHex(s string) (*Report, error)

	// EncodeDocument encodes a JSON or YAML transaction document
	EncodeDocument(doc []byte, format Format) ([]byte, error)

	// Render writes a report in the configured output format
	Render(w io.Writer, report *Report) error

	// EncodeCompactSize encodes a single CompactSize value
	EncodeCompactSize(value uint64) []byte

	// DecodeCompactSizeHex decodes a hex encoded CompactSize value
	DecodeCompactSizeHex(s string) (codec.CompactSize, int, error)
}

// Factory creates inspection services
type Factory interface {
	// CreateService creates a new service with the given options
	CreateService(opts Options, m *metrics.Metrics) (Service, error)
}
