package stamp

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Built-in element descriptions
const (
	DescGUID      = "new random UUID on every render"
	DescDateTime  = "current date and time on every render"
	DescCounter   = "keyed counter shared across renders and formats"
	DescParameter = "value looked up by dot path in the render data"
	DescValue     = "the render data itself"
	DescJSON      = "gjson path query over JSON render data"
	DescEnv       = "environment variable read at parse time"
	DescText      = "literal attribute text"
	DescNewline   = "one or more line feeds"
	DescMachine   = "host name"
	DescProcess   = "process id"
)

// Built-in field descriptions
const (
	DescFieldGUIDFormat     = "N, D, B or P"
	DescFieldCase           = "upper, lower, title or none"
	DescFieldDateTimeFormat = "Go layout or iso, rfc3339, unix, unixms, date, time"
	DescFieldUTC            = "render in UTC"
	DescFieldCounterName    = "counter key"
	DescFieldCounterValue   = "initial value"
	DescFieldCounterInc     = "step added on each render"
	DescFieldParamName      = "dot path into the render data"
	DescFieldParamValue     = "fallback when the path is missing"
	DescFieldValueFormat    = "empty, fmt verb, {0:picture} or Go layout"
	DescFieldJSONPath       = "gjson path"
	DescFieldDefault        = "fallback when missing"
	DescFieldEnvName        = "variable name"
	DescFieldText           = "text to emit"
	DescFieldNewlineCount   = "number of line feeds"
)

// Built-in builder error formats
const (
	ErrFmtNewlineCount = "newline count %d exceeds maximum %d"
)

// Newline is the text emitted by the newline element.
const Newline = "\n"

// MaxNewlineCount bounds the newline element's count attribute.
const MaxNewlineCount = 1024

// BuiltinElements returns the descriptors of every built-in element. New
// registries built by the Engine are seeded with these unless WithoutBuiltins
// is given.
func BuiltinElements() []ElementDescriptor {
	return []ElementDescriptor{
		guidElement(),
		dateTimeElement(),
		counterElement(),
		parameterElement(),
		valueElement(),
		jsonElement(),
		envElement(),
		textElement(),
		newlineElement(),
		machineElement(),
		processElement(),
	}
}

func caseField() Field {
	return Field{
		Name:          AttrCase,
		Abbreviations: []string{AbbrCase},
		Convert:       ConvertCasing,
		Description:   DescFieldCase,
	}
}

func guidElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementGUID,
		Kind:        KindDynamic,
		Description: DescGUID,
		Fields: []Field{
			{
				Name:          AttrFormat,
				Abbreviations: []string{AbbrFormat},
				Convert:       ConvertOneOf(GUIDFormatDigits, GUIDFormatHyphens, GUIDFormatBraces, GUIDFormatParentheses),
				Default:       GUIDFormatHyphens,
				Description:   DescFieldGUIDFormat,
			},
			caseField(),
		},
		Dynamic: func(v *Values) (RenderFunc, error) {
			format := v.String(AttrFormat)
			casing := v.Casing(AttrCase)
			return func(_ context.Context, _ any) (string, error) {
				return casing.Apply(FormatGUID(uuid.New(), format)), nil
			}, nil
		},
	}
}

// FormatGUID renders id in one of the N, D, B or P layouts. Unknown formats
// fall back to D.
func FormatGUID(id uuid.UUID, format string) string {
	s := id.String()
	switch format {
	case GUIDFormatDigits:
		return strings.ReplaceAll(s, "-", "")
	case GUIDFormatBraces:
		return "{" + s + "}"
	case GUIDFormatParentheses:
		return "(" + s + ")"
	default:
		return s
	}
}

func dateTimeElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementDateTime,
		Kind:        KindDynamic,
		Description: DescDateTime,
		Fields: []Field{
			{
				Name:          AttrFormat,
				Abbreviations: []string{AbbrFormat},
				Default:       DateTimeFormatRFC3339,
				Description:   DescFieldDateTimeFormat,
			},
			{
				Name:          AttrUTC,
				Abbreviations: []string{AbbrUTC},
				Convert:       ConvertBool,
				Default:       false,
				Description:   DescFieldUTC,
			},
		},
		Dynamic: func(v *Values) (RenderFunc, error) {
			format := v.String(AttrFormat)
			utc := v.Bool(AttrUTC)
			return func(_ context.Context, _ any) (string, error) {
				now := time.Now()
				if utc {
					now = now.UTC()
				}
				return FormatDateTime(now, format), nil
			}, nil
		},
	}
}

// FormatDateTime renders t with a named format or, failing that, a Go layout.
func FormatDateTime(t time.Time, format string) string {
	switch strings.ToLower(format) {
	case "", DateTimeFormatRFC3339:
		return t.Format(time.RFC3339)
	case DateTimeFormatISO:
		return t.Format(LayoutISO)
	case DateTimeFormatUnix:
		return strconv.FormatInt(t.Unix(), 10)
	case DateTimeFormatUnixMS:
		return strconv.FormatInt(t.UnixMilli(), 10)
	case DateTimeFormatDate:
		return t.Format(LayoutDate)
	case DateTimeFormatTime:
		return t.Format(LayoutTime)
	}
	return t.Format(format)
}

func counterElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementCounter,
		Kind:        KindDynamic,
		Description: DescCounter,
		Fields: []Field{
			{
				Name:          AttrName,
				Abbreviations: []string{AbbrName},
				Default:       DefaultCounterName,
				Description:   DescFieldCounterName,
			},
			{
				Name:          AttrValue,
				Abbreviations: []string{AbbrValue},
				Convert:       ConvertInt64,
				Default:       DefaultCounterValue,
				Description:   DescFieldCounterValue,
			},
			{
				Name:          AttrInc,
				Abbreviations: []string{AbbrInc},
				Convert:       ConvertInt64,
				Default:       DefaultCounterInc,
				Description:   DescFieldCounterInc,
			},
		},
		Dynamic: func(v *Values) (RenderFunc, error) {
			name := v.String(AttrName)
			initial := v.Int64(AttrValue)
			step := v.Int64(AttrInc)
			store := v.Counters()
			if store == nil {
				return nil, NewCounterStoreClosedError(CounterOpNext)
			}
			metrics := v.Metrics()
			return func(ctx context.Context, _ any) (string, error) {
				n, err := store.Next(ctx, name, initial, step)
				if err != nil {
					return "", err
				}
				metrics.incCounter()
				return strconv.FormatInt(n, 10), nil
			}, nil
		},
	}
}
