package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAttributes(t *testing.T) {
	b := DefaultBoundaries()

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, DecodeAttributes("", b))
	})

	t.Run("ordered pairs", func(t *testing.T) {
		attrs := DecodeAttributes("name=start5&value=5&inc=2", b)
		require.Len(t, attrs, 3)
		assert.Equal(t, []string{"name", "value", "inc"}, attrs.Keys())
	})

	t.Run("duplicate keys first wins", func(t *testing.T) {
		attrs := DecodeAttributes("f=N&f=D", b)
		assert.Equal(t, 2, attrs.Len())
		v, ok := attrs.Get("f")
		require.True(t, ok)
		assert.Equal(t, "N", v)
		assert.Equal(t, "N", attrs.Map()["f"])
	})

	t.Run("case sensitive keys", func(t *testing.T) {
		attrs := DecodeAttributes("Format=N", b)
		assert.False(t, attrs.Has("format"))
		assert.True(t, attrs.Has("Format"))
	})

	t.Run("query unescaping", func(t *testing.T) {
		attrs := DecodeAttributes("text=hello+world&sym=%26%3D", b)
		assert.Equal(t, "hello world", attrs.GetDefault("text", ""))
		assert.Equal(t, "&=", attrs.GetDefault("sym", ""))
	})

	t.Run("malformed escape kept raw", func(t *testing.T) {
		attrs := DecodeAttributes("p=100%", b)
		assert.Equal(t, "100%", attrs.GetDefault("p", ""))
	})

	t.Run("boundary escapes collapsed", func(t *testing.T) {
		attrs := DecodeAttributes("format={{0}}", b)
		assert.Equal(t, "{0}", attrs.GetDefault("format", ""))
	})

	t.Run("nested boundary value kept", func(t *testing.T) {
		attrs := DecodeAttributes("format={0:00.00}", b)
		assert.Equal(t, "{0:00.00}", attrs.GetDefault("format", ""))
	})

	t.Run("key without value and empty pairs", func(t *testing.T) {
		attrs := DecodeAttributes("utc&&f=iso", b)
		require.Len(t, attrs, 2)
		assert.Equal(t, "", attrs.GetDefault("utc", "x"))
	})
}

func TestEncodeAttributes(t *testing.T) {
	b := DefaultBoundaries()

	t.Run("round trip", func(t *testing.T) {
		in := Attributes{
			{Key: "format", Value: "{0:00.00}"},
			{Key: "text", Value: "a&b=c d"},
			{Key: "lit", Value: "{{"},
		}
		encoded := EncodeAttributes(in, b)
		assert.NotContains(t, encoded, "{")
		assert.NotContains(t, encoded, "}")
		assert.Equal(t, in, DecodeAttributes(encoded, b))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", EncodeAttributes(nil, b))
	})
}

func TestAttributes_Clone(t *testing.T) {
	orig := Attributes{{Key: "a", Value: "1"}}
	clone := orig.Clone()
	clone[0].Value = "2"
	assert.Equal(t, "1", orig[0].Value)
	assert.Nil(t, Attributes(nil).Clone())
}
