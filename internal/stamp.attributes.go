package internal

import (
	"net/url"
	"strings"
)

// Attribute is one decoded key/value pair.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an ordered list of pairs. Duplicate keys are kept; lookups
// return the first match. Keys are case-sensitive.
type Attributes []Attribute

// Get returns the first value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// GetDefault returns the first value under key, or def.
func (a Attributes) GetDefault(key, def string) string {
	if v, ok := a.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of pairs, duplicates included.
func (a Attributes) Len() int {
	return len(a)
}

// Keys returns keys in declaration order, duplicates included.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a))
	for i, attr := range a {
		keys[i] = attr.Key
	}
	return keys
}

// Map returns a map copy where the first occurrence of each key wins.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a))
	for _, attr := range a {
		if _, exists := m[attr.Key]; !exists {
			m[attr.Key] = attr.Value
		}
	}
	return m
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// DecodeAttributes parses "k1=v1&k2=v2" into ordered pairs.
// Keys and values are query-unescaped, then values have doubled boundary
// tokens collapsed.
func DecodeAttributes(raw string, boundaries Boundaries) Attributes {
	if raw == "" {
		return nil
	}

	var attrs Attributes
	for _, pair := range strings.Split(raw, AttrPairSeparator) {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, AttrValueSeparator)
		attrs = append(attrs, Attribute{
			Key:   queryUnescape(key),
			Value: boundaries.Unescape(queryUnescape(value)),
		})
	}
	return attrs
}

// EncodeAttributes renders pairs back to query-string form. Values have their
// boundary tokens doubled first so DecodeAttributes restores them exactly.
func EncodeAttributes(attrs Attributes, boundaries Boundaries) string {
	var sb strings.Builder
	for i, attr := range attrs {
		if i > 0 {
			sb.WriteString(AttrPairSeparator)
		}
		sb.WriteString(url.QueryEscape(attr.Key))
		sb.WriteString(AttrValueSeparator)
		sb.WriteString(url.QueryEscape(boundaries.Escape(attr.Value)))
	}
	return sb.String()
}

// queryUnescape decodes %XX and '+', keeping the raw text when malformed.
func queryUnescape(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
