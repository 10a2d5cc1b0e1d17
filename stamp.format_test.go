package stamp

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Template(t *testing.T) {
	engine := MustNew()
	engine.MustRegister(staticDescriptor("sig", "-- team"))

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"literal text", "hello", "hello"},
		{"escaped literal", "{{x}}", "{{x}}"},
		{"dynamic without attributes", "{guid}", "{guid}"},
		{"dynamic with attributes", "{guid?f=N}", "{guid?f=N}"},
		{"defaults are not recorded", "{counter?name=default}", "{counter?name=default}"},
		{"static without attributes emits its text", "{sig}", "-- team"},
		{"static with attributes keeps the placeholder", "{text?value=hi}", "{text?value=hi}"},
		{"unknown name is escaped", "{nope}", "{{nope}}"},
		{"query encoding", "{text?value=a b&c}", "{text?value=a+b}"},
		{"shortcut expands", "{@user=anon}", "{parameter?name=user&value=anon}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := engine.Parse(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Template())
			assert.Equal(t, f.Template(), f.String())
		})
	}
}

func TestFormat_TemplateRoundTrip(t *testing.T) {
	engine := MustNew()
	sources := []string{
		"Hello {@name}, today is {datetime?format=date&utc}",
		"{text?value=%7B%7Bbraces%7D%7D} and {{literal}}",
		"{value?format={0:#,##0}}",
		"{json?path=items.0.name&default=none}",
	}
	data := map[string]any{"name": "Ann"}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			f := engine.MustParse(src)
			again := engine.MustParse(f.Template())
			require.Equal(t, f.Len(), again.Len())
			for i, el := range f.Elements() {
				other := again.Elements()[i]
				assert.Equal(t, el.Name(), other.Name())
				assert.Equal(t, el.Attributes(), other.Attributes())
			}
			if f.IsStatic() {
				assert.Equal(t, render(t, f, data), render(t, again, data))
			}
		})
	}
}

func TestFormat_Accessors(t *testing.T) {
	engine := MustNew()
	src := "id {guid} at {text?value=now}"
	f := engine.MustParse(src)

	assert.Equal(t, src, f.Source())
	assert.Equal(t, 4, f.Len())
	assert.False(t, f.IsStatic())

	elements := f.Elements()
	elements[0] = nil
	assert.NotNil(t, f.Elements()[0], "Elements must return a copy")

	el := f.Elements()[1]
	assert.Equal(t, ElementGUID, el.Name())
	assert.Equal(t, KindDynamic, el.Kind())
	assert.Equal(t, "", el.Text())

	lit := f.Elements()[0]
	assert.True(t, lit.IsLiteral())
	assert.Equal(t, "", lit.Name())
	assert.Equal(t, "id ", lit.Text())

	assert.True(t, engine.MustParse("a {text?value=b}").IsStatic())
}

func TestFormat_RenderTo(t *testing.T) {
	engine := MustNew()
	f := engine.MustParse("n={counter?name=w&value=10}")

	var buf bytes.Buffer
	require.NoError(t, f.RenderTo(context.Background(), &buf, nil))
	require.NoError(t, f.RenderTo(context.Background(), &buf, nil))
	assert.Equal(t, "n=10n=11", buf.String())
}

func TestFormat_RenderError(t *testing.T) {
	boom := errors.New("backend down")
	engine := MustNew()
	engine.MustRegister(ElementDescriptor{
		Name: "flaky",
		Kind: KindDynamic,
		Dynamic: func(*Values) (RenderFunc, error) {
			return func(context.Context, any) (string, error) { return "", boom }, nil
		},
	})

	f := engine.MustParse("x{flaky}y")
	out, err := f.Render(context.Background(), nil)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.Is(err, ErrRenderFailed))
	assert.True(t, errors.Is(err, boom))
	assertMetadata(t, requireCustomError(t, err), MetaKeyElement, "flaky")

	assert.Panics(t, func() { f.MustRender(nil) })
}

func TestFormat_MustRender(t *testing.T) {
	f := MustNew().MustParse("{text?value=ok&case=upper}")
	assert.Equal(t, "OK", f.MustRender(nil))
}
