package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameTemplate = "template"
	CmdNameElements = "elements"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagOutput   = "output"
	FlagRepeat   = "repeat"
	FlagConfig   = "config"
	FlagFormat   = "format"
	FlagStrict   = "strict"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagRepeatShort   = "n"
	FlagConfigShort   = "c"
	FlagFormatShort   = "F"
	FlagStrictShort   = "s"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultRepeat = 1
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgInvalidJSON         = "invalid JSON data"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgParseTemplateFailed = "template parsing failed"
	ErrMsgRenderFailed        = "template rendering failed"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgInvalidRepeat       = "repeat count must be at least 1"
	ErrMsgEngineFailed        = "failed to create engine"
	ErrMsgInvalidFlags        = "invalid flags"
)

// Help text templates
const (
	HelpMainUsage = `go-stamp - template-string engine CLI

Usage:
    stamp <command> [options]

Commands:
    render      Render a template with data
    validate    Parse a template and report binding errors
    template    Print the normalized form of a template
    elements    List the registered elements
    version     Show version information
    help        Show help for a command

Use "stamp help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

Usage:
    stamp render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <json>       JSON data string
    -f, --data-file <file>  JSON data file
    -o, --output <file>     Output file (default: stdout)
    -n, --repeat <count>    Render the parsed template count times, one per line
    -c, --config <file>     YAML engine configuration

Examples:
    stamp render -t template.txt -d '{"name": "Alice"}'
    stamp render -t template.txt -f data.json -o output.txt
    echo 'ORD-{counter?value=1000}' | stamp render -t - -n 3
    stamp render -t template.txt -c stamp.yaml`

	HelpValidateUsage = `Parse a template and report binding errors

Usage:
    stamp validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -c, --config <file>     YAML engine configuration
    -F, --format <format>   Output format: text, json (default: text)
    -s, --strict            Fail on unknown element names

Examples:
    stamp validate -t template.txt
    stamp validate -t template.txt --strict
    cat template.txt | stamp validate -t - -F json`

	HelpTemplateUsage = `Print the normalized form of a template

Usage:
    stamp template [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -c, --config <file>     YAML engine configuration

Examples:
    echo '{@user=anon}' | stamp template -t -`

	HelpElementsUsage = `List the registered elements

Usage:
    stamp elements [options]

Options:
    -c, --config <file>     YAML engine configuration
    -F, --format <format>   Output format: text, json (default: text)`

	HelpVersionUsage = `Show version information

Usage:
    stamp version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    stamp help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    template    Show help for template command
    elements    Show help for elements command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-stamp version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output format templates
const (
	ValidationTextSuccess = "Template is valid (%d elements)"
	ValidationTextFailure = "Template is invalid: %s"
	ValidationTextDetail  = "  %s: %s"

	ValidationTextStrictFailure = "Template is invalid: unknown elements in strict mode"
	ValidationTextUnknown       = "  warning: unknown element %q kept as text"
	ValidationTextUnknownHint   = "  warning: unknown element %q kept as text (did you mean: %s?)"
)

// Elements output format templates
const (
	ElementsTextHeader   = "%s (%s) - %s"
	ElementsTextField    = "    %s%s"
	ElementsTextAbbr     = " [%s]"
	ElementsTextRequired = " (required)"
	ElementsTextDefault  = " (default: %v)"
	ElementsTextFieldDoc = " - %s"
	ElementsAbbrJoiner   = ", "
)

// CLI metadata
const (
	CLIName        = "stamp"
	CLIDescription = "template-string engine CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	JSONIndent         = "  "
)
