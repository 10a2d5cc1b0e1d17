package stamp

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	start     string
	end       string
	separator string
	registry  *Registry
	counters  CounterStore
	metrics   *Metrics
	cacheSize int
	builtins  bool
	logger    *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		start:     DefaultStart,
		end:       DefaultEnd,
		separator: DefaultSeparator,
		cacheSize: DefaultCacheSize,
		builtins:  true,
	}
}

// WithBoundaries sets the start, end and attribute-separator tokens.
// Default: "{", "}", "?". Empty tokens fail New.
func WithBoundaries(start, end, separator string) Option {
	return func(c *engineConfig) {
		c.start = start
		c.end = end
		c.separator = separator
	}
}

// WithRegistry uses an existing registry instead of building one.
// The built-in elements are not added to a supplied registry.
func WithRegistry(r *Registry) Option {
	return func(c *engineConfig) {
		c.registry = r
	}
}

// WithoutBuiltins starts the engine with an empty registry.
func WithoutBuiltins() Option {
	return func(c *engineConfig) {
		c.builtins = false
	}
}

// WithCounterStore sets the store backing counter elements.
// Default: a new MemoryCounterStore per engine.
func WithCounterStore(s CounterStore) Option {
	return func(c *engineConfig) {
		c.counters = s
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *engineConfig) {
		c.metrics = m
	}
}

// WithCacheSize sets how many parsed formats ParseCached keeps.
// Zero or negative disables the cache. Default: 256.
func WithCacheSize(n int) Option {
	return func(c *engineConfig) {
		c.cacheSize = n
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
