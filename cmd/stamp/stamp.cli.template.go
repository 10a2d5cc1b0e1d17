package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// templateConfig holds parsed template command configuration
type templateConfig struct {
	templatePath string
	configPath   string
}

// runTemplate parses a template and prints it back in normalized form:
// shortcuts expanded, attributes re-encoded and unknown elements kept verbatim.
func runTemplate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseTemplateFlags(args)
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

	format, err := engine.Parse(string(templateSource))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseTemplateFailed, err)
		return ExitCodeValidationError
	}

	fmt.Fprintln(stdout, format.Template())
	return ExitCodeSuccess
}

func parseTemplateFlags(args []string) (*templateConfig, error) {
	fs := flag.NewFlagSet(CmdNameTemplate, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &templateConfig{}
	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	return cfg, nil
}
