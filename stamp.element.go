package stamp

import (
	"context"

	"github.com/itsatony/go-stamp/internal"
)

// Kind is the closed set of element capabilities.
type Kind int

const (
	// KindStatic elements produce the same text on every render.
	KindStatic Kind = iota
	// KindDynamic elements compute their text on every render.
	KindDynamic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDynamic:
		return KindNameDynamic
	default:
		return KindNameStatic
	}
}

// Attribute is one key/value pair taken from a placeholder's query string.
type Attribute = internal.Attribute

// Attributes is an ordered attribute list. Lookups return the first match.
type Attributes = internal.Attributes

// RenderFunc computes a dynamic element's text. data is whatever the caller
// passed to Format.Render.
type RenderFunc func(ctx context.Context, data any) (string, error)

// Element is one bound unit of a Format: literal text, a static producer's
// fixed output, or a dynamic producer's render function.
type Element struct {
	name    string
	kind    Kind
	attrs   Attributes
	text    string
	render  RenderFunc
	literal bool
}

func newLiteral(text string) *Element {
	return &Element{kind: KindStatic, text: text, literal: true}
}

// Name returns the element name, or "" for literal text.
func (e *Element) Name() string {
	return e.name
}

// Kind returns whether the element is static or dynamic.
func (e *Element) Kind() Kind {
	return e.kind
}

// Attributes returns a copy of the raw attributes consumed during binding.
func (e *Element) Attributes() Attributes {
	return e.attrs.Clone()
}

// IsLiteral reports whether the element is plain template text.
func (e *Element) IsLiteral() bool {
	return e.literal
}

// IsDynamic reports whether the element computes its text per render.
func (e *Element) IsDynamic() bool {
	return e.kind == KindDynamic
}

// Text returns the fixed text of a static element and "" for dynamic ones.
func (e *Element) Text() string {
	return e.text
}

// Render returns the element's text for one render pass.
func (e *Element) Render(ctx context.Context, data any) (string, error) {
	if e.kind == KindStatic {
		return e.text, nil
	}
	return e.render(ctx, data)
}
