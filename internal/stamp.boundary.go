package internal

import (
	"fmt"
	"strings"
)

// Boundary is an immutable, non-empty delimiter token.
type Boundary struct {
	token string
}

// NewBoundary creates a boundary for the given token.
func NewBoundary(token string) (Boundary, error) {
	if token == "" {
		return Boundary{}, &BoundaryError{Message: ErrMsgEmptyBoundary}
	}
	return Boundary{token: token}, nil
}

// MustBoundary creates a boundary and panics on an empty token.
func MustBoundary(token string) Boundary {
	b, err := NewBoundary(token)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the raw token.
func (b Boundary) String() string {
	return b.token
}

// Len returns the token length in bytes.
func (b Boundary) Len() int {
	return len(b.token)
}

// IsZero reports whether the boundary was never initialised.
func (b Boundary) IsZero() bool {
	return b.token == ""
}

// Doubled returns the escape form of the token ("{" -> "{{").
func (b Boundary) Doubled() string {
	return b.token + b.token
}

// Index returns the absolute index of the first occurrence of the token at or
// after from, or -1. The first half of a doubled pair counts as an occurrence.
func (b Boundary) Index(s string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], b.token)
	if i < 0 {
		return -1
	}
	return from + i
}

// IndexUnescaped is like Index but skips doubled pairs.
func (b Boundary) IndexUnescaped(s string, from int) int {
	n := len(b.token)
	for i := from; ; {
		j := b.Index(s, i)
		if j < 0 {
			return -1
		}
		if strings.HasPrefix(s[j+n:], b.token) {
			i = j + 2*n
			continue
		}
		return j
	}
}

// Boundaries is the start/end/separator triple used by one tokenizer.
type Boundaries struct {
	Start     Boundary
	End       Boundary
	Separator Boundary
}

// DefaultBoundaries returns the "{", "}", "?" triple.
func DefaultBoundaries() Boundaries {
	return Boundaries{
		Start:     MustBoundary(DefaultStart),
		End:       MustBoundary(DefaultEnd),
		Separator: MustBoundary(DefaultSeparator),
	}
}

// NewBoundaries validates and builds a boundary triple.
// All tokens must be non-empty and pairwise distinct.
func NewBoundaries(start, end, separator string) (Boundaries, error) {
	roles := []string{BoundaryRoleStart, BoundaryRoleEnd, BoundaryRoleSeparator}
	tokens := []string{start, end, separator}
	built := make([]Boundary, len(tokens))

	for i, tok := range tokens {
		b, err := NewBoundary(tok)
		if err != nil {
			return Boundaries{}, &BoundaryError{Message: ErrMsgEmptyBoundary, Role: roles[i]}
		}
		built[i] = b
	}
	for i := 0; i < len(tokens); i++ {
		for j := i + 1; j < len(tokens); j++ {
			if tokens[i] == tokens[j] {
				return Boundaries{}, &BoundaryError{
					Message: ErrMsgDuplicateBoundary,
					Role:    fmt.Sprintf(ErrFmtBoundaryRolesClash, roles[i], roles[j]),
				}
			}
		}
	}

	return Boundaries{Start: built[0], End: built[1], Separator: built[2]}, nil
}

func (b Boundaries) tokens() [3]string {
	return [3]string{b.Start.token, b.End.token, b.Separator.token}
}

// Unescape collapses every doubled token into a single literal token.
// It must only run on text that has already been cut out of the template.
func (b Boundaries) Unescape(s string) string {
	toks := b.tokens()
	if !b.containsDoubled(s, toks) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		matched := false
		for _, tok := range toks {
			if tok != "" && strings.HasPrefix(s[i:], tok+tok) {
				sb.WriteString(tok)
				i += 2 * len(tok)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(s[i])
			i++
		}
	}
	return sb.String()
}

// Escape doubles every token occurrence so the text re-parses as literal text.
func (b Boundaries) Escape(s string) string {
	toks := b.tokens()
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		matched := false
		for _, tok := range toks {
			if tok != "" && strings.HasPrefix(s[i:], tok) {
				sb.WriteString(tok)
				sb.WriteString(tok)
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(s[i])
			i++
		}
	}
	return sb.String()
}

func (b Boundaries) containsDoubled(s string, toks [3]string) bool {
	for _, tok := range toks {
		if tok != "" && strings.Contains(s, tok+tok) {
			return true
		}
	}
	return false
}

// BoundaryError reports an invalid boundary configuration.
type BoundaryError struct {
	Message string
	Role    string
}

// Error implements the error interface.
func (e *BoundaryError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf(ErrFmtBoundaryRole, e.Message, e.Role)
	}
	return e.Message
}
