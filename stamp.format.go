package stamp

import (
	"context"
	"io"
	"strings"

	"github.com/itsatony/go-stamp/internal"
)

// Format is the parsed, immutable element sequence of one template.
// Render is safe for concurrent use.
type Format struct {
	elements   []*Element
	unknown    []UnknownElement
	boundaries internal.Boundaries
	source     string
	metrics    *Metrics
}

// formatBuilder accumulates elements during one parse, coalescing adjacent
// literal text.
type formatBuilder struct {
	elements []*Element
	unknown  []UnknownElement
}

// UnknownElement is an element-shaped segment whose name was not registered
// at parse time. It renders as its source text.
type UnknownElement struct {
	Name        string
	Suggestions []string
}

func (b *formatBuilder) appendLiteral(text string) {
	if text == "" {
		return
	}
	if n := len(b.elements); n > 0 && b.elements[n-1].literal {
		b.elements[n-1].text += text
		return
	}
	b.elements = append(b.elements, newLiteral(text))
}

func (b *formatBuilder) append(el *Element) {
	b.elements = append(b.elements, el)
}

// Elements returns the element sequence. The slice is a copy; elements are
// shared and read-only.
func (f *Format) Elements() []*Element {
	out := make([]*Element, len(f.elements))
	copy(out, f.elements)
	return out
}

// Len returns the number of elements.
func (f *Format) Len() int {
	return len(f.elements)
}

// Unknown returns the unregistered element names met during parsing, in
// source order, with registered names that look similar.
func (f *Format) Unknown() []UnknownElement {
	out := make([]UnknownElement, len(f.unknown))
	copy(out, f.unknown)
	return out
}

// Source returns the template the Format was parsed from.
func (f *Format) Source() string {
	return f.source
}

// IsStatic reports whether every element is static, in which case rendering
// never touches data or counter state.
func (f *Format) IsStatic() bool {
	for _, el := range f.elements {
		if el.kind == KindDynamic {
			return false
		}
	}
	return true
}

// Render concatenates every element's output for one pass.
func (f *Format) Render(ctx context.Context, data any) (string, error) {
	var sb strings.Builder
	if err := f.RenderTo(ctx, &sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderTo writes one render pass to w.
func (f *Format) RenderTo(ctx context.Context, w io.Writer, data any) error {
	for _, el := range f.elements {
		text, err := el.Render(ctx, data)
		if err != nil {
			f.metrics.observeRender(err)
			return NewRenderError(el.name, err)
		}
		if _, err := io.WriteString(w, text); err != nil {
			f.metrics.observeRender(err)
			return err
		}
	}
	f.metrics.observeRender(nil)
	return nil
}

// MustRender renders with a background context and panics on error.
// Suited to formats whose dynamic elements cannot fail, such as those backed
// by the in-memory counter store.
func (f *Format) MustRender(data any) string {
	out, err := f.Render(context.Background(), data)
	if err != nil {
		panic(err)
	}
	return out
}

// Template serialises the Format back to template syntax. Elements with
// recorded attributes become start+name+sep+query+end, static elements without
// attributes become their escaped text, anything else start+name+end.
func (f *Format) Template() string {
	b := f.boundaries
	var sb strings.Builder
	for _, el := range f.elements {
		switch {
		case len(el.attrs) > 0:
			sb.WriteString(b.Start.String())
			sb.WriteString(b.Escape(el.name))
			sb.WriteString(b.Separator.String())
			sb.WriteString(internal.EncodeAttributes(el.attrs, b))
			sb.WriteString(b.End.String())
		case el.kind == KindStatic:
			sb.WriteString(b.Escape(el.text))
		default:
			sb.WriteString(b.Start.String())
			sb.WriteString(b.Escape(el.name))
			sb.WriteString(b.End.String())
		}
	}
	return sb.String()
}

// String returns Template().
func (f *Format) String() string {
	return f.Template()
}
