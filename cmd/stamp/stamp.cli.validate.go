package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-stamp"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	configPath   string
	format       string
	strict       bool
}

// validateOutput represents JSON output for validation
type validateOutput struct {
	Valid    bool           `json:"valid"`
	Elements int            `json:"elements"`
	Error    *validateIssue `json:"error,omitempty"`
	Unknown  []unknownIssue `json:"unknown,omitempty"`
}

// unknownIssue is an element name with no registered element
type unknownIssue struct {
	Name        string   `json:"name"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// validateIssue describes why a template failed to bind
type validateIssue struct {
	Message string `json:"message"`
	Element string `json:"element,omitempty"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	engine, err := newEngine(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeError
	}
	defer engine.Close()

	result := validateOutput{Valid: true}
	format, parseErr := engine.Parse(string(templateSource))
	if parseErr != nil {
		result.Valid = false
		result.Error = describeIssue(parseErr)
	} else {
		result.Elements = format.Len()
		for _, u := range format.Unknown() {
			result.Unknown = append(result.Unknown, unknownIssue{Name: u.Name, Suggestions: u.Suggestions})
		}
		if cfg.strict && len(result.Unknown) > 0 {
			result.Valid = false
		}
	}

	if cfg.format == OutputFormatJSON {
		outputValidationJSON(result, stdout)
	} else {
		outputValidationText(result, stdout)
	}

	if !result.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &validateConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.BoolVar(&cfg.strict, FlagStrict, false, "")
	fs.BoolVar(&cfg.strict, FlagStrictShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

// describeIssue pulls the element and field metadata out of a binding error.
func describeIssue(err error) *validateIssue {
	issue := &validateIssue{Message: err.Error()}

	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return issue
	}
	if v, ok := customErr.GetMetadata(stamp.MetaKeyElement); ok {
		issue.Element = v
	}
	if v, ok := customErr.GetMetadata(stamp.MetaKeyField); ok {
		issue.Field = v
	}
	if v, ok := customErr.GetMetadata(stamp.MetaKeyValue); ok {
		issue.Value = v
	}
	return issue
}

func outputValidationText(result validateOutput, stdout io.Writer) {
	if result.Error == nil {
		if result.Valid {
			fmt.Fprintf(stdout, ValidationTextSuccess+FmtNewline, result.Elements)
		} else {
			fmt.Fprintln(stdout, ValidationTextStrictFailure)
		}
		for _, u := range result.Unknown {
			if len(u.Suggestions) > 0 {
				fmt.Fprintf(stdout, ValidationTextUnknownHint+FmtNewline, u.Name, strings.Join(u.Suggestions, ElementsAbbrJoiner))
			} else {
				fmt.Fprintf(stdout, ValidationTextUnknown+FmtNewline, u.Name)
			}
		}
		return
	}

	fmt.Fprintf(stdout, ValidationTextFailure+FmtNewline, result.Error.Message)
	if result.Error.Element != "" {
		fmt.Fprintf(stdout, ValidationTextDetail+FmtNewline, stamp.MetaKeyElement, result.Error.Element)
	}
	if result.Error.Field != "" {
		fmt.Fprintf(stdout, ValidationTextDetail+FmtNewline, stamp.MetaKeyField, result.Error.Field)
	}
	if result.Error.Value != "" {
		fmt.Fprintf(stdout, ValidationTextDetail+FmtNewline, stamp.MetaKeyValue, result.Error.Value)
	}
}

func outputValidationJSON(result validateOutput, stdout io.Writer) {
	jsonBytes, _ := json.MarshalIndent(result, "", JSONIndent)
	fmt.Fprintln(stdout, string(jsonBytes))
}
