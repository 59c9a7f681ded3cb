package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ssargent/txwire/pkg/codec"
	"gopkg.in/yaml.v3"
)

// EncodeDocument parses a transaction document and returns its wire
// encoding. Unknown fields are rejected so typos do not silently drop data.
func (i *Inspector) EncodeDocument(doc []byte, format Format) ([]byte, error) {
	tx, err := parseDocument(doc, format)
	if err != nil {
		i.metrics.RecordEncode(entityTransaction, false, 0)
		return nil, err
	}

	encoded := tx.Encode()
	i.metrics.RecordEncode(entityTransaction, true, len(encoded))
	log.Debugf("Encoded transaction version=%d inputs=%d size=%d",
		tx.Version, len(tx.Inputs), len(encoded))

	return encoded, nil
}

func parseDocument(doc []byte, format Format) (*codec.Transaction, error) {
	var tx codec.Transaction

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(doc))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tx); err != nil {
			return nil, fmt.Errorf("failed to parse JSON transaction: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(doc))
		dec.KnownFields(true)
		if err := dec.Decode(&tx); err != nil {
			return nil, fmt.Errorf("failed to parse YAML transaction: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}

	return codec.NewTransaction(tx.Version, tx.Inputs, tx.LockTime), nil
}
