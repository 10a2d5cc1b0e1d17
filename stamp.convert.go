package stamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Converter turns a raw attribute string into a typed field value.
type Converter func(raw string) (any, error)

// Converter error messages
const (
	ErrMsgNotOneOf      = "value must be one of"
	ErrMsgUnknownCasing = "unknown casing"
	ErrFmtAllowedValues = "%s [%s]"
	AllowedValuesJoiner = ", "
)

// ConvertString keeps the raw text.
func ConvertString(raw string) (any, error) {
	return raw, nil
}

// ConvertInt parses a base-10 int.
func ConvertInt(raw string) (any, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

// ConvertInt64 parses a base-10 int64.
func ConvertInt64(raw string) (any, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// ConvertFloat64 parses a float64.
func ConvertFloat64(raw string) (any, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// ConvertBool parses a bool. A bare key ("{datetime?utc}") means true.
func ConvertBool(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true, nil
	}
	return strconv.ParseBool(raw)
}

// ConvertDuration parses a Go duration ("1h30m").
func ConvertDuration(raw string) (any, error) {
	return time.ParseDuration(strings.TrimSpace(raw))
}

// ConvertCasing parses upper, lower, title or none.
func ConvertCasing(raw string) (any, error) {
	return ParseCasing(raw)
}

// ConvertOneOf accepts one of allowed, compared case-insensitively, and returns
// the canonical spelling from allowed.
func ConvertOneOf(allowed ...string) Converter {
	return func(raw string) (any, error) {
		for _, a := range allowed {
			if strings.EqualFold(a, raw) {
				return a, nil
			}
		}
		return nil, fmt.Errorf(ErrFmtAllowedValues, ErrMsgNotOneOf, strings.Join(allowed, AllowedValuesJoiner))
	}
}

// Casing is a text case transformation.
type Casing int

const (
	CasingNone Casing = iota
	CasingUpper
	CasingLower
	CasingTitle
)

// ParseCasing maps a casing name to a Casing.
func ParseCasing(name string) (Casing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CasingNameNone:
		return CasingNone, nil
	case CasingNameUpper:
		return CasingUpper, nil
	case CasingNameLower:
		return CasingLower, nil
	case CasingNameTitle:
		return CasingTitle, nil
	default:
		return CasingNone, errors.New(ErrMsgUnknownCasing)
	}
}

// String returns the casing name.
func (c Casing) String() string {
	switch c {
	case CasingUpper:
		return CasingNameUpper
	case CasingLower:
		return CasingNameLower
	case CasingTitle:
		return CasingNameTitle
	default:
		return CasingNameNone
	}
}

// Apply transforms s. Casers are stateful, so each call builds its own.
func (c Casing) Apply(s string) string {
	switch c {
	case CasingUpper:
		return cases.Upper(language.Und).String(s)
	case CasingLower:
		return cases.Lower(language.Und).String(s)
	case CasingTitle:
		return cases.Title(language.Und).String(s)
	default:
		return s
	}
}
