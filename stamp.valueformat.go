package stamp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatValue renders v according to format:
//
//	""            natural string form
//	"{0:00.00}"   composite: each {0} or {0:spec} replaced by v
//	"%08.3f"      fmt verb
//	"00.##"       numeric picture (numbers only)
//	"2006-01-02"  Go layout (time.Time only)
//
// Anything else falls back to the natural string form.
func FormatValue(v any, format string) string {
	switch {
	case format == "":
		return stringify(v)
	case strings.Contains(format, FormatCompositeOpen):
		return formatComposite(v, format)
	}
	return formatSpec(v, format)
}

func formatSpec(v any, spec string) string {
	if spec == "" {
		return stringify(v)
	}
	if t, ok := v.(time.Time); ok {
		return t.Format(spec)
	}
	if strings.Contains(spec, FormatVerbMarker) {
		return fmt.Sprintf(spec, v)
	}
	if f, ok := toFloat(v); ok && isPicture(spec) {
		return formatPicture(f, spec)
	}
	return stringify(v)
}

// formatComposite replaces {0} and {0:spec} occurrences; other text is kept.
func formatComposite(v any, format string) string {
	var sb strings.Builder
	rest := format
	for {
		i := strings.Index(rest, FormatCompositeOpen)
		if i < 0 {
			sb.WriteString(rest)
			return sb.String()
		}
		sb.WriteString(rest[:i])
		after := rest[i+len(FormatCompositeOpen):]
		end := strings.Index(after, FormatCompositeClose)
		if end < 0 {
			sb.WriteString(rest[i:])
			return sb.String()
		}

		hole := after[:end]
		switch {
		case hole == "":
			sb.WriteString(stringify(v))
		case strings.HasPrefix(hole, FormatCompositeSpec):
			sb.WriteString(formatSpec(v, hole[len(FormatCompositeSpec):]))
		default:
			// not a placeholder for argument 0, keep it verbatim
			sb.WriteString(rest[i : i+len(FormatCompositeOpen)+end+len(FormatCompositeClose)])
		}
		rest = after[end+len(FormatCompositeClose):]
	}
}

func isPicture(spec string) bool {
	seenDigit := false
	for _, r := range spec {
		switch r {
		case FormatPictureDigit, FormatPictureOptional:
			seenDigit = true
		case FormatPictureDecimal:
		default:
			return false
		}
	}
	return seenDigit
}

// formatPicture applies a numeric picture: '0' is a mandatory digit, '#' an
// optional one, '.' the decimal point.
func formatPicture(f float64, spec string) string {
	intPic, fracPic, _ := strings.Cut(spec, string(FormatPictureDecimal))
	minInt := strings.Count(intPic, string(FormatPictureDigit))
	minFrac := strings.Count(fracPic, string(FormatPictureDigit))
	maxFrac := len(fracPic)

	s := strconv.FormatFloat(math.Abs(f), 'f', maxFrac, 64)
	ip, fp, _ := strings.Cut(s, ".")
	for len(fp) > minFrac && strings.HasSuffix(fp, "0") {
		fp = fp[:len(fp)-1]
	}
	if minInt == 0 && ip == "0" {
		ip = ""
	}
	if len(ip) < minInt {
		ip = strings.Repeat("0", minInt-len(ip)) + ip
	}

	out := ip
	if fp != "" {
		out += "." + fp
	}
	if out == "" {
		out = "0"
	}
	if f < 0 && strings.Trim(out, "0.") != "" {
		out = "-" + out
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// stringify is the natural string form used when no format is given.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case json.RawMessage:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
	return fmt.Sprint(v)
}
