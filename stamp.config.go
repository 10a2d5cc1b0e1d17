package stamp

import (
	"os"
	"slices"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config error messages
const (
	ErrMsgConfigRead          = "failed to read config file"
	ErrMsgConfigParse         = "failed to parse config YAML"
	ErrMsgConfigLogLevel      = "invalid log level"
	ErrMsgConfigUnknownDriver = "unknown counter store driver"
	ErrMsgConfigCacheSize     = "cache size cannot be negative"
	ErrMsgConfigLogger        = "failed to build logger"
)

// Config defaults
const (
	DefaultLogLevel = "info"
)

// Config is the YAML-loadable engine configuration.
//
//	boundaries:
//	  start: "${"
//	  end: "}"
//	  separator: "?"
//	counters:
//	  driver: redis
//	  dsn: redis://localhost:6379/0
//	cache:
//	  size: 512
//	log:
//	  level: debug
type Config struct {
	Boundaries BoundaryConfig `yaml:"boundaries"`
	Counters   CounterConfig  `yaml:"counters"`
	Cache      CacheConfig    `yaml:"cache"`
	Log        LogConfig      `yaml:"log"`
}

// BoundaryConfig holds the three boundary tokens.
type BoundaryConfig struct {
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	Separator string `yaml:"separator"`
}

// CounterConfig selects the counter store driver.
type CounterConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn,omitempty"`
}

// CacheConfig controls the parse cache.
type CacheConfig struct {
	Size     int  `yaml:"size"`
	Disabled bool `yaml:"disabled,omitempty"`
}

// LogConfig controls the zap logger built by Config.Logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development,omitempty"`
}

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() *Config {
	return &Config{
		Boundaries: BoundaryConfig{
			Start:     DefaultStart,
			End:       DefaultEnd,
			Separator: DefaultSeparator,
		},
		Counters: CounterConfig{Driver: CounterDriverMemory},
		Cache:    CacheConfig{Size: DefaultCacheSize},
		Log:      LogConfig{Level: DefaultLogLevel},
	}
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, err)
	}
	return ParseConfig(data)
}

// Validate checks values that New would otherwise reject late.
// Boundary tokens are checked by New itself.
func (c *Config) Validate() error {
	if _, err := newBoundaries(c.Boundaries.Start, c.Boundaries.End, c.Boundaries.Separator); err != nil {
		return err
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return NewConfigError(ErrMsgConfigLogLevel, err)
	}
	if c.Counters.Driver != "" && !slices.Contains(ListCounterDrivers(), c.Counters.Driver) {
		return NewCounterDriverNotFoundError(c.Counters.Driver)
	}
	if c.Cache.Size < 0 {
		return NewConfigError(ErrMsgConfigCacheSize, nil)
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Logger builds a zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigLogLevel, err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigLogger, err)
	}
	return logger, nil
}

// Options turns the config into engine options. The counter store is opened
// here and owned by the engine from then on. logger may be nil, in which case
// one is built from the log section.
func (c *Config) Options(logger *zap.Logger) ([]Option, error) {
	if logger == nil {
		var err error
		if logger, err = c.Logger(); err != nil {
			return nil, err
		}
	}

	opts := []Option{
		WithLogger(logger),
		WithBoundaries(c.Boundaries.Start, c.Boundaries.End, c.Boundaries.Separator),
	}

	if c.Cache.Disabled {
		opts = append(opts, WithCacheSize(0))
	} else if c.Cache.Size > 0 {
		opts = append(opts, WithCacheSize(c.Cache.Size))
	}

	if c.Counters.Driver != "" {
		store, err := OpenCounterStore(c.Counters.Driver, c.Counters.DSN)
		if err != nil {
			return nil, err
		}
		logger.Debug(LogMsgCounterStoreOpened, zap.String(LogFieldDriver, c.Counters.Driver))
		opts = append(opts, WithCounterStore(store))
	}

	return opts, nil
}

// NewFromConfig creates an Engine from cfg. extra options are applied after
// the configured ones.
func NewFromConfig(cfg *Config, logger *zap.Logger, extra ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, err
	}
	engine, err := New(append(opts, extra...)...)
	if err != nil {
		closeConfiguredStore(opts)
		return nil, err
	}
	return engine, nil
}

// closeConfiguredStore releases a counter store opened by Options when the
// engine that would have owned it was never built.
func closeConfiguredStore(opts []Option) {
	applied := defaultEngineConfig()
	for _, opt := range opts {
		opt(applied)
	}
	if applied.counters != nil {
		_ = applied.counters.Close()
	}
}
