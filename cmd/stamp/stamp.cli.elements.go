package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-stamp"
)

// elementsConfig holds parsed elements command configuration
type elementsConfig struct {
	configPath string
	format     string
}

// elementOutput represents one registered element in JSON output
type elementOutput struct {
	Name        string        `json:"name"`
	Kind        string        `json:"kind"`
	Description string        `json:"description,omitempty"`
	Fields      []fieldOutput `json:"fields,omitempty"`
}

// fieldOutput represents one declared field in JSON output
type fieldOutput struct {
	Name          string   `json:"name"`
	Abbreviations []string `json:"abbreviations,omitempty"`
	Required      bool     `json:"required,omitempty"`
	Default       any      `json:"default,omitempty"`
	Description   string   `json:"description,omitempty"`
}

func runElements(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseElementsFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	engine, err := newEngine(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeError
	}
	defer engine.Close()

	elements := describeElements(engine.Registry().Descriptors())

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(elements, "", JSONIndent)
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	outputElementsText(elements, stdout)
	return ExitCodeSuccess
}

func parseElementsFlags(args []string) (*elementsConfig, error) {
	fs := flag.NewFlagSet(CmdNameElements, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &elementsConfig{}
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	return cfg, nil
}

func describeElements(descs []stamp.ElementDescriptor) []elementOutput {
	out := make([]elementOutput, 0, len(descs))
	for _, d := range descs {
		el := elementOutput{
			Name:        d.Name,
			Kind:        d.Kind.String(),
			Description: d.Description,
		}
		for _, f := range d.Fields {
			el.Fields = append(el.Fields, fieldOutput{
				Name:          f.Name,
				Abbreviations: f.Abbreviations,
				Required:      f.Required,
				Default:       f.Default,
				Description:   f.Description,
			})
		}
		out = append(out, el)
	}
	return out
}

func outputElementsText(elements []elementOutput, stdout io.Writer) {
	for _, el := range elements {
		fmt.Fprintf(stdout, ElementsTextHeader+FmtNewline, el.Name, el.Kind, el.Description)
		for _, f := range el.Fields {
			var sb strings.Builder
			if len(f.Abbreviations) > 0 {
				fmt.Fprintf(&sb, ElementsTextAbbr, strings.Join(f.Abbreviations, ElementsAbbrJoiner))
			}
			if f.Required {
				sb.WriteString(ElementsTextRequired)
			}
			if f.Default != nil {
				fmt.Fprintf(&sb, ElementsTextDefault, f.Default)
			}
			if f.Description != "" {
				fmt.Fprintf(&sb, ElementsTextFieldDoc, f.Description)
			}
			fmt.Fprintf(stdout, ElementsTextField+FmtNewline, f.Name, sb.String())
		}
	}
}
