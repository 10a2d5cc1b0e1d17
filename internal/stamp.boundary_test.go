package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundary_New(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		b, err := NewBoundary("${")
		require.NoError(t, err)
		assert.Equal(t, "${", b.String())
		assert.Equal(t, 2, b.Len())
		assert.Equal(t, "${${", b.Doubled())
		assert.False(t, b.IsZero())
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := NewBoundary("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyBoundary)
	})

	t.Run("must panics on empty", func(t *testing.T) {
		assert.Panics(t, func() { MustBoundary("") })
	})
}

func TestBoundary_Index(t *testing.T) {
	b := MustBoundary("}")

	assert.Equal(t, 2, b.Index("ab}}c", 0))
	assert.Equal(t, 3, b.Index("ab}}c", 3))
	assert.Equal(t, -1, b.Index("ab}}c", 4))
	assert.Equal(t, -1, b.Index("abc", 10))
}

func TestBoundary_IndexUnescaped(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		source string
		from   int
		want   int
	}{
		{"single occurrence", "{", "ab{c", 0, 2},
		{"doubled pair skipped", "{", "a{{b{c", 0, 4},
		{"only doubled", "{", "{{x}}", 0, -1},
		{"triple keeps the tail", "{", "{{{x", 0, 2},
		{"multi-byte token", "${", "a${${b${c", 0, 6},
		{"from offset", "{", "{a{b", 1, 2},
		{"none", "{", "plain", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustBoundary(tt.token)
			assert.Equal(t, tt.want, b.IndexUnescaped(tt.source, tt.from))
		})
	}
}

func TestBoundaries_New(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b := DefaultBoundaries()
		assert.Equal(t, DefaultStart, b.Start.String())
		assert.Equal(t, DefaultEnd, b.End.String())
		assert.Equal(t, DefaultSeparator, b.Separator.String())
	})

	t.Run("empty separator", func(t *testing.T) {
		_, err := NewBoundaries("{", "}", "")
		require.Error(t, err)

		var bErr *BoundaryError
		require.ErrorAs(t, err, &bErr)
		assert.Equal(t, BoundaryRoleSeparator, bErr.Role)
	})

	t.Run("duplicate tokens", func(t *testing.T) {
		_, err := NewBoundaries("%", "%", "?")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDuplicateBoundary)
		assert.Contains(t, err.Error(), BoundaryRoleStart)
	})

	t.Run("custom triple", func(t *testing.T) {
		b, err := NewBoundaries("${", "}", "|")
		require.NoError(t, err)
		assert.Equal(t, "${", b.Start.String())
	})
}

func TestBoundaries_Unescape(t *testing.T) {
	b := DefaultBoundaries()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"{{x}}", "{x}"},
		{"{{x", "{x"},
		{"x}}", "x}"},
		{"a??b", "a?b"},
		{"{{{", "{{"},
		{"}", "}"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Unescape(tt.in))
		})
	}
}

func TestBoundaries_EscapeRoundTrip(t *testing.T) {
	b := DefaultBoundaries()

	for _, s := range []string{"plain", "{x}", "a?b", "{guid{test}?value={test2}}", "}{"} {
		t.Run(s, func(t *testing.T) {
			escaped := b.Escape(s)
			assert.Equal(t, s, b.Unescape(escaped))
		})
	}

	assert.Equal(t, "{{x}}", b.Escape("{x}"))
}
