package stamp

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// Lookuper is render data that resolves dot-notation paths itself.
type Lookuper interface {
	Lookup(path string) (any, bool)
}

// Data is a hierarchical render-data container. Lookups fall back to the
// parent when a path is not found locally.
type Data struct {
	values map[string]any
	parent *Data
	mu     sync.RWMutex
}

// NewData creates render data from values. A nil map is treated as empty.
func NewData(values map[string]any) *Data {
	if values == nil {
		values = make(map[string]any)
	}
	return &Data{values: values}
}

// Lookup implements Lookuper.
func (d *Data) Lookup(path string) (any, bool) {
	d.mu.RLock()
	v, ok := walkPath(d.values, path)
	d.mu.RUnlock()

	if !ok && d.parent != nil {
		return d.parent.Lookup(path)
	}
	return v, ok
}

// Set stores value under a top-level key.
func (d *Data) Set(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.values[key] = value
}

// Child creates data that overrides d with values.
func (d *Data) Child(values map[string]any) *Data {
	child := NewData(values)
	child.parent = d
	return child
}

// LookupPath resolves a dot-notation path against render data. Supported data:
// Lookuper, map[string]any, map[string]string, []any indexed by position,
// and JSON documents given as
// []byte, json.RawMessage or a string holding an object or array.
func LookupPath(data any, path string) (any, bool) {
	if path == "" || data == nil {
		return nil, false
	}

	switch v := data.(type) {
	case Lookuper:
		return v.Lookup(path)
	case json.RawMessage:
		return lookupJSON(gjson.ParseBytes(v), path)
	case []byte:
		return lookupJSON(gjson.ParseBytes(v), path)
	case string:
		if isJSONDocument(v) {
			return lookupJSON(gjson.Parse(v), path)
		}
		return nil, false
	}
	return walkPath(data, path)
}

func walkPath(data any, path string) (any, bool) {
	current := data
	for _, part := range strings.Split(path, PathSeparator) {
		if part == "" {
			continue
		}
		switch v := current.(type) {
		case map[string]any:
			val, ok := v[part]
			if !ok {
				return nil, false
			}
			current = val
		case map[string]string:
			val, ok := v[part]
			if !ok {
				return nil, false
			}
			current = val
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil, false
			}
			current = v[idx]
		case Lookuper:
			val, ok := v.Lookup(part)
			if !ok {
				return nil, false
			}
			current = val
		default:
			return nil, false
		}
	}
	return current, true
}

func lookupJSON(doc gjson.Result, path string) (any, bool) {
	r := doc.Get(path)
	if !r.Exists() {
		return nil, false
	}
	return r.Value(), true
}

func isJSONDocument(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" || (t[0] != '{' && t[0] != '[') {
		return false
	}
	return gjson.Valid(t)
}
