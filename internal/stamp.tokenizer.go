package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Segment is one raw unit cut from a template: either literal text or an
// element body split into name and raw attribute string.
type Segment struct {
	Kind SegmentKind

	// Text is the unescaped literal text (SegmentKindText only).
	Text string

	// Name is the unescaped element name (SegmentKindElement only).
	Name string

	// RawAttributes is the undecoded query string after the separator.
	RawAttributes string

	// Implicit holds attributes produced by the @name=value shortcut.
	Implicit Attributes

	// Source is the exact template substring this segment was cut from.
	Source string

	// Offset is the byte offset of Source within the template.
	Offset int
}

// IsElement reports whether the segment is a delimited element span.
func (s Segment) IsElement() bool {
	return s.Kind == SegmentKindElement
}

// Tokenizer walks a template once and yields segments lazily.
// It is not safe for concurrent use; Boundaries are immutable so many
// tokenizers may share one triple.
type Tokenizer struct {
	source     string
	boundaries Boundaries
	pos        int
	done       bool
	logger     *zap.Logger
}

// NewTokenizer creates a tokenizer over source.
func NewTokenizer(source string, boundaries Boundaries, logger *zap.Logger) *Tokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tokenizer{
		source:     source,
		boundaries: boundaries,
		logger:     logger,
	}
}

// All drains the tokenizer and returns every remaining segment.
func (t *Tokenizer) All() []Segment {
	t.logger.Debug(LogMsgTokenizerStart, zap.Int(LogFieldSource, len(t.source)))
	var segments []Segment
	for {
		seg, ok := t.Next()
		if !ok {
			break
		}
		segments = append(segments, seg)
	}
	t.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldSegments, len(segments)))
	return segments
}

// Next returns the next segment, or false once the template is exhausted.
func (t *Tokenizer) Next() (Segment, bool) {
	if t.done || t.pos >= len(t.source) {
		t.done = true
		return Segment{}, false
	}

	start := t.boundaries.Start
	end := t.boundaries.End

	s := start.IndexUnescaped(t.source, t.pos)
	if s < 0 {
		return t.rest(t.pos), true
	}
	if s > t.pos {
		seg := t.text(t.pos, s)
		t.pos = s
		return seg, true
	}

	afterStart := s + start.Len()
	e := end.Index(t.source, afterStart)
	if e < 0 {
		return t.rest(s), true
	}
	afterEnd := e + end.Len()

	// One level of nesting: an inner start before the first end means that end
	// closes the inner pair, so the outer pair closes at the next end.
	if inner := start.IndexUnescaped(t.source[:e], afterStart); inner >= 0 {
		e = end.Index(t.source, afterEnd)
		if e < 0 {
			return t.rest(s), true
		}
		afterEnd = e + end.Len()
	}

	seg := t.element(s, afterStart, e, afterEnd)
	t.pos = afterEnd
	return seg, true
}

// rest emits everything from offset to the end as text and stops.
func (t *Tokenizer) rest(offset int) Segment {
	t.done = true
	t.pos = len(t.source)
	return t.text(offset, len(t.source))
}

func (t *Tokenizer) text(from, to int) Segment {
	raw := t.source[from:to]
	return Segment{
		Kind:   SegmentKindText,
		Text:   t.boundaries.Unescape(raw),
		Source: raw,
		Offset: from,
	}
}

func (t *Tokenizer) element(s, afterStart, e, afterEnd int) Segment {
	body := t.source[afterStart:e]
	nameSection, rawAttrs := body, ""
	if i := t.boundaries.Separator.IndexUnescaped(body, 0); i >= 0 {
		nameSection = body[:i]
		rawAttrs = body[i+t.boundaries.Separator.Len():]
	}

	seg := Segment{
		Kind:          SegmentKindElement,
		RawAttributes: rawAttrs,
		Source:        t.source[s:afterEnd],
		Offset:        s,
	}

	if shortcut, ok := strings.CutPrefix(nameSection, ShortcutPrefix); ok {
		seg.Name = ShortcutElementName
		seg.Implicit = t.shortcutAttributes(shortcut)
		return seg
	}

	seg.Name = t.boundaries.Unescape(nameSection)
	return seg
}

// shortcutAttributes expands "id=5" into name=id&value=5.
func (t *Tokenizer) shortcutAttributes(shortcut string) Attributes {
	name, value, hasValue := strings.Cut(shortcut, ShortcutValueDivider)
	attrs := Attributes{{Key: ShortcutAttrName, Value: t.boundaries.Unescape(name)}}
	if hasValue {
		attrs = append(attrs, Attribute{Key: ShortcutAttrValue, Value: t.boundaries.Unescape(value)})
	}
	return attrs
}

// Tokenize is a convenience wrapper returning all segments of source.
func Tokenize(source string, boundaries Boundaries, logger *zap.Logger) []Segment {
	return NewTokenizer(source, boundaries, logger).All()
}
