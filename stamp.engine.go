package stamp

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/itsatony/go-stamp/internal"
)

// Engine is the main entry point: it owns the boundary configuration, the
// element registry, the counter store and the parse cache.
// Parse and ParseCached are safe for concurrent use.
type Engine struct {
	registry   *Registry
	counters   CounterStore
	boundaries internal.Boundaries
	metrics    *Metrics
	logger     *zap.Logger
	cache      *lru.Cache[string, *Format]
	group      singleflight.Group
}

// New creates an Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	boundaries, err := newBoundaries(config.start, config.end, config.separator)
	if err != nil {
		return nil, err
	}

	registry := config.registry
	if registry == nil {
		if config.builtins {
			registry = NewRegistry(logger, BuiltinElements()...)
		} else {
			registry = NewRegistry(logger)
		}
	}

	counters := config.counters
	if counters == nil {
		counters = NewMemoryCounterStore()
	}

	var cache *lru.Cache[string, *Format]
	if config.cacheSize > 0 {
		cache, err = lru.New[string, *Format](config.cacheSize)
		if err != nil {
			return nil, NewConfigError(ErrMsgConfig, err)
		}
	}

	logger.Debug(LogMsgEngineCreated, zap.Int(LogFieldElements, registry.Count()))

	return &Engine{
		registry:   registry,
		counters:   counters,
		boundaries: boundaries,
		metrics:    config.metrics,
		logger:     logger,
		cache:      cache,
	}, nil
}

// newBoundaries validates a boundary triple, reporting the offending role.
func newBoundaries(start, end, separator string) (internal.Boundaries, error) {
	boundaries, err := internal.NewBoundaries(start, end, separator)
	if err != nil {
		role := ""
		var bErr *internal.BoundaryError
		if errors.As(err, &bErr) {
			role = bErr.Role
		}
		return internal.Boundaries{}, NewInvalidBoundaryError(role, err)
	}
	return boundaries, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse turns source into a Format. Unknown element names and unterminated
// boundaries become literal text; binding failures abort the parse and no
// Format is returned.
func (e *Engine) Parse(source string) (*Format, error) {
	e.logger.Debug(LogMsgParseStart, zap.Int(LogFieldSource, len(source)))

	env := e.environment()
	tokenizer := internal.NewTokenizer(source, e.boundaries, e.logger)
	builder := &formatBuilder{}

	for {
		seg, ok := tokenizer.Next()
		if !ok {
			break
		}
		if !seg.IsElement() {
			builder.appendLiteral(seg.Text)
			continue
		}

		desc, found := e.registry.Resolve(seg.Name)
		if !found {
			suggestions := internal.SimilarNames(seg.Name, e.registry.List(), internal.MaxSuggestions)
			e.logger.Debug(LogMsgUnknownElement,
				zap.String(LogFieldElement, seg.Name),
				zap.Strings(LogFieldSuggestions, suggestions))
			e.metrics.incUnknown()
			builder.appendLiteral(seg.Source)
			builder.unknown = append(builder.unknown, UnknownElement{Name: seg.Name, Suggestions: suggestions})
			continue
		}

		attrs := append(seg.Implicit.Clone(), internal.DecodeAttributes(seg.RawAttributes, e.boundaries)...)
		el, err := Bind(desc, attrs, env)
		if err != nil {
			e.logger.Debug(LogMsgParseFailed, zap.String(LogFieldElement, seg.Name), zap.Error(err))
			e.metrics.observeParse(err)
			return nil, err
		}
		builder.append(el)
	}

	e.metrics.observeParse(nil)
	e.logger.Debug(LogMsgParseEnd, zap.Int(LogFieldElements, len(builder.elements)))

	return &Format{
		elements:   builder.elements,
		unknown:    builder.unknown,
		boundaries: e.boundaries,
		source:     source,
		metrics:    e.metrics,
	}, nil
}

// MustParse parses source and panics on error.
func (e *Engine) MustParse(source string) *Format {
	f, err := e.Parse(source)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseCached returns the cached Format for source, parsing it on a miss.
// Concurrent misses for the same source share one parse. Failed parses are
// not cached.
func (e *Engine) ParseCached(source string) (*Format, error) {
	if e.cache == nil {
		return e.Parse(source)
	}
	if f, ok := e.cache.Get(source); ok {
		e.logger.Debug(LogMsgCacheHit, zap.Int(LogFieldSource, len(source)))
		return f, nil
	}

	v, err, _ := e.group.Do(source, func() (any, error) {
		if f, ok := e.cache.Get(source); ok {
			return f, nil
		}
		f, err := e.Parse(source)
		if err != nil {
			return nil, err
		}
		e.cache.Add(source, f)
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Format), nil
}

// PurgeCache drops every cached Format.
func (e *Engine) PurgeCache() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// Execute parses (through the cache) and renders in one step.
func (e *Engine) Execute(ctx context.Context, source string, data any) (string, error) {
	f, err := e.ParseCached(source)
	if err != nil {
		return "", err
	}
	return f.Render(ctx, data)
}

// Register adds an element descriptor and purges the parse cache.
func (e *Engine) Register(desc ElementDescriptor) error {
	if err := e.registry.Register(desc); err != nil {
		return err
	}
	e.PurgeCache()
	return nil
}

// MustRegister adds an element descriptor and panics on failure.
func (e *Engine) MustRegister(desc ElementDescriptor) {
	if err := e.Register(desc); err != nil {
		panic(err)
	}
}

// Registry returns the engine's registry. Changes made directly on it are not
// reflected in already cached formats; call PurgeCache afterwards.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Counters returns the counter store backing counter elements.
func (e *Engine) Counters() CounterStore {
	return e.counters
}

// Boundaries returns the start, end and separator tokens.
func (e *Engine) Boundaries() (start, end, separator string) {
	return e.boundaries.Start.String(), e.boundaries.End.String(), e.boundaries.Separator.String()
}

// Close releases the counter store.
func (e *Engine) Close() error {
	return e.counters.Close()
}

func (e *Engine) environment() Environment {
	return Environment{
		Counters: e.counters,
		Metrics:  e.metrics,
		Logger:   e.logger,
	}
}
