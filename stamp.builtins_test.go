package stamp

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinElements_Valid(t *testing.T) {
	seen := make(map[string]bool)
	for _, desc := range BuiltinElements() {
		require.NoError(t, desc.Validate(), desc.Name)
		assert.False(t, seen[desc.Name], "duplicate built-in %s", desc.Name)
		assert.NotEmpty(t, desc.Description, desc.Name)
		seen[desc.Name] = true
	}
	assert.Len(t, seen, 11)
}

func TestGUIDElement(t *testing.T) {
	engine := MustNew()

	tests := []struct {
		source  string
		pattern string
	}{
		{"{guid}", `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`},
		{"{guid?format=N}", `^[0-9a-f]{32}$`},
		{"{guid?f=b}", `^\{[0-9a-f-]{36}\}$`},
		{"{guid?f=P}", `^\([0-9a-f-]{36}\)$`},
		{"{guid?f=N&c=upper}", `^[0-9A-F]{32}$`},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			f := engine.MustParse(tt.source)
			first := render(t, f, nil)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), first)
			assert.NotEqual(t, first, render(t, f, nil), "a new GUID per render")
		})
	}

	_, err := engine.Parse("{guid?f=X}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAttributeConversion))
}

func TestFormatGUID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	assert.Equal(t, "6ba7b8109dad11d180b400c04fd430c8", FormatGUID(id, GUIDFormatDigits))
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", FormatGUID(id, GUIDFormatHyphens))
	assert.Equal(t, "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}", FormatGUID(id, GUIDFormatBraces))
	assert.Equal(t, "(6ba7b810-9dad-11d1-80b4-00c04fd430c8)", FormatGUID(id, GUIDFormatParentheses))
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", FormatGUID(id, "?"))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 9, 123_000_000, time.UTC)

	tests := map[string]string{
		"":                    "2024-03-05T14:07:09Z",
		DateTimeFormatRFC3339: "2024-03-05T14:07:09Z",
		DateTimeFormatISO:     "2024-03-05T14:07:09.123Z",
		"ISO":                 "2024-03-05T14:07:09.123Z",
		DateTimeFormatUnix:    "1709647629",
		DateTimeFormatUnixMS:  "1709647629123",
		DateTimeFormatDate:    "2024-03-05",
		DateTimeFormatTime:    "14:07:09",
		"02.01.2006 15:04":    "05.03.2024 14:07",
	}
	for format, want := range tests {
		t.Run(format, func(t *testing.T) {
			assert.Equal(t, want, FormatDateTime(ts, format))
		})
	}
}

func TestDateTimeElement(t *testing.T) {
	engine := MustNew()

	out := render(t, engine.MustParse("{datetime?utc}"), nil)
	parsed, err := time.Parse(time.RFC3339, out)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)
	assert.True(t, strings.HasSuffix(out, "Z"))

	out = render(t, engine.MustParse("{datetime?f=unix}"), nil)
	secs, err := strconv.ParseInt(out, 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Unix(), secs, 5)

	out = render(t, engine.MustParse("{datetime?format=2006&u=true}"), nil)
	assert.Equal(t, strconv.Itoa(time.Now().UTC().Year()), out)
}

func TestParameterElement(t *testing.T) {
	engine := MustNew()
	data := map[string]any{
		"user":  map[string]any{"name": "alice", "score": 7.5},
		"count": 3,
	}

	tests := []struct {
		source string
		want   string
	}{
		{"{parameter?name=user.name}", "alice"},
		{"{parameter?name=user.name&case=title}", "Alice"},
		{"{parameter?name=user.score&f={0:000.00}}", "007.50"},
		{"{parameter?name=count&format=%2503d}", "003"},
		{"{parameter?name=missing}", ""},
		{"{parameter?name=missing&v=fallback}", "fallback"},
		{"{@user.name?c=upper}", "ALICE"},
		{"{@missing=n/a}", "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, engine.MustParse(tt.source), data))
		})
	}

	_, err := engine.Parse("{parameter?value=x}")
	assert.True(t, errors.Is(err, ErrRequiredFieldMissing))
}

func TestValueElement(t *testing.T) {
	engine := MustNew()

	assert.Equal(t, "hello", render(t, engine.MustParse("{value}"), "hello"))
	assert.Equal(t, "HELLO", render(t, engine.MustParse("{value?case=upper}"), "hello"))
	assert.Equal(t, "42", render(t, engine.MustParse("{value}"), 42))
	assert.Equal(t, "003.1", render(t, engine.MustParse("{value?format=%2505.1f}"), 3.14159))
	assert.Equal(t, "[0042]", render(t, engine.MustParse("{value?format=[{0:0000}]}"), 42))
	assert.Equal(t, "", render(t, engine.MustParse("{value}"), nil))
}

func TestJSONElement(t *testing.T) {
	engine := MustNew()
	doc := []byte(`{"user":{"name":"bob","tags":["a","b"]},"total":12.5,"items":[{"id":1},{"id":2}]}`)

	tests := []struct {
		source string
		want   string
	}{
		{"{json?path=user.name}", "bob"},
		{"{json?p=total}", "12.5"},
		{"{json?p=items.1.id}", "2"},
		{"{json?p=items.#}", "2"},
		{"{json?p=user.tags}", `["a","b"]`},
		{"{json?p=user.email}", ""},
		{"{json?p=user.email&d=none}", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, engine.MustParse(tt.source), doc))
		})
	}

	assert.Equal(t, "bob", render(t, engine.MustParse("{json?p=user.name}"), string(doc)))
}

func TestEnvElement(t *testing.T) {
	t.Setenv("STAMP_TEST_REGION", "eu-west")
	engine := MustNew()

	f := engine.MustParse("{env?name=STAMP_TEST_REGION}")
	assert.True(t, f.IsStatic())
	assert.Equal(t, "eu-west", render(t, f, nil))

	assert.Equal(t, "local", render(t, engine.MustParse("{env?name=STAMP_TEST_UNSET_VAR&d=local}"), nil))
}

func TestStaticElements(t *testing.T) {
	engine := MustNew()
	host, err := os.Hostname()
	require.NoError(t, err)

	tests := []struct {
		source string
		want   string
	}{
		{"{text?value=hello world&case=title}", "Hello World"},
		{"{text?v=a%26b}", "a&b"},
		{"a{newline}b", "a\nb"},
		{"{newline?count=3}", "\n\n\n"},
		{"{newline?n=0}", ""},
		{"{machine}", host},
		{"{machine?c=upper}", strings.ToUpper(host)},
		{"{process}", strconv.Itoa(os.Getpid())},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			f := engine.MustParse(tt.source)
			assert.True(t, f.IsStatic())
			assert.Equal(t, tt.want, render(t, f, nil))
		})
	}

	_, err = engine.Parse("{newline?count=many}")
	assert.True(t, errors.Is(err, ErrAttributeConversion))
}

func TestNewlineElement_CountBounds(t *testing.T) {
	engine := MustNew()

	f, err := engine.Parse("{newline?n=-3}")
	require.NoError(t, err)
	assert.Equal(t, "", render(t, f, nil))

	f, err = engine.Parse(fmt.Sprintf("{newline?count=%d}", MaxNewlineCount))
	require.NoError(t, err)
	assert.Len(t, render(t, f, nil), MaxNewlineCount)

	for _, source := range []string{
		fmt.Sprintf("{newline?count=%d}", MaxNewlineCount+1),
		"{newline?count=1000000000}",
		"{newline?count=9223372036854775807}",
	} {
		t.Run(source, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() { _, err = engine.Parse(source) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBuildFailed))
			assertMetadata(t, requireCustomError(t, err), MetaKeyElement, ElementNewline)
		})
	}
}
