package inspect

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/ssargent/txwire/pkg/codec"
	"github.com/ssargent/txwire/pkg/metrics"
)

const (
	entityTransaction = "transaction"
	entityCompactSize = "compact_size"
)

// ErrTrailingBytes is returned in strict mode when input continues past the
// end of the transaction
var ErrTrailingBytes = errors.New("inspect: trailing bytes after transaction")

// Options configures an Inspector
type Options struct {
	Format Format
	Strict bool
}

// Report is the result of decoding one transaction
type Report struct {
	ID          ksuid.KSUID        `json:"id" yaml:"id"`
	Transaction *codec.Transaction `json:"transaction" yaml:"transaction"`
	Consumed    int                `json:"consumed" yaml:"consumed"`
	Trailing    int                `json:"trailing" yaml:"trailing"`
}

// Inspector implements Service on top of the codec package
type Inspector struct {
	opts    Options
	metrics *metrics.Metrics
}

// NewInspector creates an inspector. A nil m gets a private metrics set.
func NewInspector(opts Options, m *metrics.Metrics) *Inspector {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &Inspector{opts: opts, metrics: m}
}

// Decode decodes a transaction from the start of data. Leftover bytes are
// reported in the result, or rejected with ErrTrailingBytes in strict mode.
func (i *Inspector) Decode(data []byte) (*Report, error) {
	start := time.Now()
	tx, n, err := codec.DecodeTransaction(data)
	i.metrics.RecordDecode(entityTransaction, err == nil, n, time.Since(start))
	if err != nil {
		log.Debugf("Decoding %d bytes failed: %v", len(data), err)
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}

	trailing := len(data) - n
	i.metrics.RecordTransaction(len(tx.Inputs), trailing)

	if trailing > 0 {
		if i.opts.Strict {
			log.Warnf("Rejecting input with %d trailing bytes", trailing)
			return nil, fmt.Errorf("%w: %d of %d bytes unused", ErrTrailingBytes, trailing, len(data))
		}
		log.Infof("Transaction ends at byte %d, ignoring %d trailing bytes", n, trailing)
	}

	report := &Report{
		ID:          ksuid.New(),
		Transaction: tx,
		Consumed:    n,
		Trailing:    trailing,
	}
	log.Debugf("Decoded transaction report=%s version=%d inputs=%d size=%d",
		report.ID, tx.Version, len(tx.Inputs), n)

	return report, nil
}

// DecodeHex decodes a hex encoded transaction
func (i *Inspector) DecodeHex(s string) (*Report, error) {
	data, err := parseHex(s)
	if err != nil {
		return nil, err
	}
	return i.Decode(data)
}

// EncodeCompactSize encodes value in its canonical form
func (i *Inspector) EncodeCompactSize(value uint64) []byte {
	encoded := codec.NewCompactSize(value).Encode()
	i.metrics.RecordEncode(entityCompactSize, true, len(encoded))
	log.Tracef("Encoded CompactSize %d as %x", value, encoded)
	return encoded
}

// DecodeCompactSizeHex decodes a hex encoded CompactSize and returns the
// value with the number of bytes it occupied
func (i *Inspector) DecodeCompactSizeHex(s string) (codec.CompactSize, int, error) {
	data, err := parseHex(s)
	if err != nil {
		return codec.CompactSize{}, 0, err
	}

	start := time.Now()
	value, n, err := codec.DecodeCompactSize(data)
	i.metrics.RecordDecode(entityCompactSize, err == nil, n, time.Since(start))
	if err != nil {
		return codec.CompactSize{}, 0, fmt.Errorf("failed to decode compact size: %w", err)
	}

	if n != value.Size() {
		log.Infof("CompactSize %d uses a %d byte form, canonical is %d bytes",
			value.Value, n, value.Size())
	}

	return value, n, nil
}

// parseHex accepts hex with surrounding whitespace and an optional 0x prefix
func parseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
