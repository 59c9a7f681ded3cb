package inspect

import "github.com/ssargent/txwire/pkg/metrics"

// DefaultFactory is the default implementation of Factory
type DefaultFactory struct{}

// NewFactory creates a new inspection service factory
func NewFactory() Factory {
	return &DefaultFactory{}
}

// CreateService creates an Inspector after checking the options
func (f *DefaultFactory) CreateService(opts Options, m *metrics.Metrics) (Service, error) {
	if opts.Format != "" {
		if _, err := ParseFormat(string(opts.Format)); err != nil {
			return nil, err
		}
	}
	return NewInspector(opts, m), nil
}
