package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ============================================================================
// LOADER OPTIONS — Functional options for New()
// ============================================================================

// Option configures a Loader.
type Option func(*config)

type config struct {
	Logger   *zap.Logger
	Registry prometheus.Registerer
}

var defaultConfig = config{
	Logger:   zap.NewNop(),
	Registry: prometheus.DefaultRegisterer,
}

// WithLogger overrides the loader's logger.
func WithLogger(l *zap.Logger) Option { return func(c *config) { c.Logger = l } }

// WithRegistry overrides the Prometheus registry the loader's counters
// register on.
func WithRegistry(r prometheus.Registerer) Option { return func(c *config) { c.Registry = r } }
