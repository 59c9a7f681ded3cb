// Package metrics collects Prometheus metrics for txwire codec operations.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for codec operations
type Metrics struct {
	registry *prometheus.Registry

	// Decode metrics
	decodeTotal    *prometheus.CounterVec
	decodeDuration *prometheus.HistogramVec
	decodedBytes   prometheus.Counter
	trailingBytes  prometheus.Counter
	decodedInputs  prometheus.Counter
	lastInputs     prometheus.Gauge

	// Encode metrics
	encodeTotal  *prometheus.CounterVec
	encodedBytes prometheus.Counter
}

// NewMetrics creates all metrics on a fresh registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,

		decodeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txwire_decode_total",
				Help: "Total number of decode operations",
			},
			[]string{"entity", "status"},
		),

		decodeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "txwire_decode_duration_seconds",
				Help:    "Decode duration in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"entity"},
		),

		decodedBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "txwire_decoded_bytes_total",
				Help: "Total number of bytes consumed by successful decodes",
			},
		),

		trailingBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "txwire_trailing_bytes_total",
				Help: "Total number of bytes left over after decoded transactions",
			},
		),

		decodedInputs: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "txwire_decoded_inputs_total",
				Help: "Total number of transaction inputs decoded",
			},
		),

		lastInputs: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "txwire_last_transaction_inputs",
				Help: "Number of inputs in the most recently decoded transaction",
			},
		),

		encodeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txwire_encode_total",
				Help: "Total number of encode operations",
			},
			[]string{"entity", "status"},
		),

		encodedBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "txwire_encoded_bytes_total",
				Help: "Total number of bytes produced by encodes",
			},
		),
	}

	return m
}

// Registry returns the registry holding all txwire metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordDecode records a decode of entity that consumed consumed bytes
func (m *Metrics) RecordDecode(entity string, success bool, consumed int, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.decodeTotal.WithLabelValues(entity, status).Inc()
	m.decodeDuration.WithLabelValues(entity).Observe(duration.Seconds())
	if success {
		m.decodedBytes.Add(float64(consumed))
	}
}

// RecordTransaction records the shape of a decoded transaction
func (m *Metrics) RecordTransaction(inputs, trailing int) {
	m.decodedInputs.Add(float64(inputs))
	m.lastInputs.Set(float64(inputs))
	m.trailingBytes.Add(float64(trailing))
}

// RecordEncode records an encode of entity that produced size bytes
func (m *Metrics) RecordEncode(entity string, success bool, size int) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.encodeTotal.WithLabelValues(entity, status).Inc()
	if success {
		m.encodedBytes.Add(float64(size))
	}
}

// WriteTextfile writes the current metric values to path in the Prometheus
// text exposition format, for pickup by a textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
