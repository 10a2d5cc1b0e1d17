package stamp

import "github.com/itsatony/go-stamp/internal"

// Default boundary tokens: {name?key=value}
const (
	DefaultStart     = internal.DefaultStart
	DefaultEnd       = internal.DefaultEnd
	DefaultSeparator = internal.DefaultSeparator
)

// Built-in element names
const (
	ElementGUID      = "guid"
	ElementDateTime  = "datetime"
	ElementCounter   = "counter"
	ElementParameter = internal.ShortcutElementName
	ElementValue     = "value"
	ElementJSON      = "json"
	ElementEnv       = "env"
	ElementText      = "text"
	ElementNewline   = "newline"
	ElementMachine   = "machine"
	ElementProcess   = "process"
)

// Attribute name constants
const (
	AttrName    = "name"
	AttrValue   = "value"
	AttrInc     = "inc"
	AttrFormat  = "format"
	AttrCase    = "case"
	AttrUTC     = "utc"
	AttrPath    = "path"
	AttrDefault = "default"
	AttrCount   = "count"
)

// Attribute abbreviations
const (
	AbbrName    = "n"
	AbbrValue   = "v"
	AbbrInc     = "i"
	AbbrFormat  = "f"
	AbbrCase    = "c"
	AbbrUTC     = "u"
	AbbrPath    = "p"
	AbbrDefault = "d"
	AbbrCount   = "n"
)

// DefaultCounterName is the counter key used when a counter element has no name.
const DefaultCounterName = "default"

// Counter defaults
const (
	DefaultCounterValue int64 = 0
	DefaultCounterInc   int64 = 1
)

// GUID format specifiers
const (
	GUIDFormatDigits      = "N" // 32 digits
	GUIDFormatHyphens     = "D" // 8-4-4-4-12
	GUIDFormatBraces      = "B" // {8-4-4-4-12}
	GUIDFormatParentheses = "P" // (8-4-4-4-12)
)

// Named datetime formats
const (
	DateTimeFormatISO     = "iso"
	DateTimeFormatRFC3339 = "rfc3339"
	DateTimeFormatUnix    = "unix"
	DateTimeFormatUnixMS  = "unixms"
	DateTimeFormatDate    = "date"
	DateTimeFormatTime    = "time"
)

// Go layouts behind the named datetime formats
const (
	LayoutISO  = "2006-01-02T15:04:05.000Z07:00"
	LayoutDate = "2006-01-02"
	LayoutTime = "15:04:05"
)

// Casing names accepted by the case attribute
const (
	CasingNameNone  = "none"
	CasingNameUpper = "upper"
	CasingNameLower = "lower"
	CasingNameTitle = "title"
)

// Kind names for debugging and CLI output
const (
	KindNameStatic  = "static"
	KindNameDynamic = "dynamic"
)

// Boolean attribute values
const (
	AttrValueTrue  = "true"
	AttrValueFalse = "false"
)

// Value formatting markers
const (
	FormatVerbMarker      = "%"
	FormatCompositeOpen   = "{0"
	FormatCompositeClose  = "}"
	FormatCompositeSpec   = ":"
	FormatPictureDigit    = '0'
	FormatPictureOptional = '#'
	FormatPictureDecimal  = '.'
	PathSeparator         = "."
)

// Parse cache defaults
const (
	DefaultCacheSize = 256
)

// Counter store driver names
const (
	CounterDriverMemory   = "memory"
	CounterDriverRedis    = "redis"
	CounterDriverPostgres = "postgres"
	CounterDriverSQLite   = "sqlite"
)

// Log message constants
const (
	LogMsgEngineCreated      = "engine created"
	LogMsgParseStart         = "starting parse"
	LogMsgParseEnd           = "parse complete"
	LogMsgParseFailed        = "parse failed"
	LogMsgUnknownElement     = "unknown element kept as literal text"
	LogMsgRegistryCreated    = "registry created"
	LogMsgElementRegistered  = "element registered"
	LogMsgElementOverridden  = "element overridden"
	LogMsgElementCollision   = "element registration collision"
	LogMsgRegistryCleared    = "registry cleared"
	LogMsgRegistryRefreshed  = "registry refreshed"
	LogMsgCounterStoreOpened = "counter store opened"
	LogMsgCounterStoreClosed = "counter store closed"
	LogMsgCounterReset       = "counter reset"
	LogMsgCacheHit           = "parse cache hit"
	LogMsgConfigLoaded       = "config loaded"
)

// Log field names
const (
	LogFieldSource      = "source_length"
	LogFieldElements    = "element_count"
	LogFieldElement     = "element"
	LogFieldCount       = "count"
	LogFieldDriver      = "driver"
	LogFieldCounter     = "counter"
	LogFieldPath        = "path"
	LogFieldError       = "error"
	LogFieldSuggestions = "suggestions"
)

// String format constants
const (
	FmtTagMessage = "%s: %s"
)
