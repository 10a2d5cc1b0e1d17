package internal

// Default boundary tokens
const (
	DefaultStart     = "{"
	DefaultEnd       = "}"
	DefaultSeparator = "?"
)

// Shortcut syntax: {@id} and {@id=5}
const (
	ShortcutPrefix       = "@"
	ShortcutElementName  = "parameter"
	ShortcutAttrName     = "name"
	ShortcutAttrValue    = "value"
	ShortcutValueDivider = "="
)

// Query-string syntax used inside element bodies
const (
	AttrPairSeparator  = "&"
	AttrValueSeparator = "="
)

// Boundary roles, used in error messages and metadata
const (
	BoundaryRoleStart     = "start"
	BoundaryRoleEnd       = "end"
	BoundaryRoleSeparator = "separator"
)

// SegmentKind identifies what a tokenizer segment carries
type SegmentKind int

const (
	SegmentKindText SegmentKind = iota
	SegmentKindElement
)

// Segment kind names for debugging
const (
	SegmentKindNameText    = "TEXT"
	SegmentKindNameElement = "ELEMENT"
)

// String returns the debug name of the segment kind
func (k SegmentKind) String() string {
	switch k {
	case SegmentKindElement:
		return SegmentKindNameElement
	default:
		return SegmentKindNameText
	}
}

// Log message constants
const (
	LogMsgTokenizerCreated = "tokenizer created"
	LogMsgTokenizerStart   = "starting tokenization"
	LogMsgTokenizerEnd     = "tokenization complete"
)

// Log field names
const (
	LogFieldSource   = "source_length"
	LogFieldSegments = "segment_count"
)

// Error message constants
const (
	ErrMsgEmptyBoundary      = "boundary token cannot be empty"
	ErrMsgDuplicateBoundary  = "boundary tokens must be distinct"
	ErrFmtBoundaryRole       = "%s: %s"
	ErrFmtBoundaryRolesClash = "%s and %s"
)
