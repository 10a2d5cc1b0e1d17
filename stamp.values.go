package stamp

import (
	"time"

	"go.uber.org/zap"
)

// Environment carries engine-owned collaborators into element builders.
type Environment struct {
	Counters CounterStore
	Metrics  *Metrics
	Logger   *zap.Logger
}

// Values holds the typed field values produced by binding one element.
// Typed getters return the zero value when the field is unset or of a
// different type.
type Values struct {
	element string
	values  map[string]any
	env     Environment
}

func newValues(element string, env Environment) *Values {
	if env.Logger == nil {
		env.Logger = zap.NewNop()
	}
	return &Values{
		element: element,
		values:  make(map[string]any),
		env:     env,
	}
}

// NewValues builds a Values outside of binding, mainly for testing builders.
func NewValues(element string, values map[string]any, env Environment) *Values {
	v := newValues(element, env)
	for k, val := range values {
		v.values[k] = val
	}
	return v
}

func (v *Values) set(field string, value any) {
	v.values[field] = value
}

// Element returns the name of the element being built.
func (v *Values) Element() string {
	return v.element
}

// Get returns the typed value of a field.
func (v *Values) Get(field string) (any, bool) {
	val, ok := v.values[field]
	return val, ok
}

// Has reports whether the field was set by an attribute or a default.
func (v *Values) Has(field string) bool {
	_, ok := v.values[field]
	return ok
}

// String returns a string field.
func (v *Values) String(field string) string {
	s, _ := v.values[field].(string)
	return s
}

// Int returns an int field.
func (v *Values) Int(field string) int {
	i, _ := v.values[field].(int)
	return i
}

// Int64 returns an int64 field.
func (v *Values) Int64(field string) int64 {
	i, _ := v.values[field].(int64)
	return i
}

// Float64 returns a float64 field.
func (v *Values) Float64(field string) float64 {
	f, _ := v.values[field].(float64)
	return f
}

// Bool returns a bool field.
func (v *Values) Bool(field string) bool {
	b, _ := v.values[field].(bool)
	return b
}

// Duration returns a time.Duration field.
func (v *Values) Duration(field string) time.Duration {
	d, _ := v.values[field].(time.Duration)
	return d
}

// Casing returns a Casing field.
func (v *Values) Casing(field string) Casing {
	c, _ := v.values[field].(Casing)
	return c
}

// Counters returns the engine's counter store.
func (v *Values) Counters() CounterStore {
	return v.env.Counters
}

// Metrics returns the engine's metrics, possibly nil.
func (v *Values) Metrics() *Metrics {
	return v.env.Metrics
}

// Logger returns the engine's logger.
func (v *Values) Logger() *zap.Logger {
	return v.env.Logger
}
