// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/txwire/pkg/inspect"
	"github.com/ssargent/txwire/pkg/metrics"
)

// Container holds all the dependencies for the application
type Container struct {
	inspectorFactory inspect.Factory
	metrics          *metrics.Metrics
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		inspectorFactory: inspect.NewFactory(),
		metrics:          metrics.NewMetrics(),
	}
}

// GetInspectorFactory returns the inspection service factory
func (c *Container) GetInspectorFactory() inspect.Factory {
	return c.inspectorFactory
}

// SetInspectorFactory allows overriding the inspection service factory (for testing)
func (c *Container) SetInspectorFactory(factory inspect.Factory) {
	c.inspectorFactory = factory
}

// GetMetrics returns the shared metrics set
func (c *Container) GetMetrics() *metrics.Metrics {
	return c.metrics
}
