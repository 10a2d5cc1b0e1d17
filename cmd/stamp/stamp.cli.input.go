package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/itsatony/go-stamp"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData returns the render data as a JSON document, queried with gjson
// paths by the parameter and json elements. No data yields nil.
func loadData(jsonStr, filePath string) (json.RawMessage, error) {
	var jsonData []byte

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		jsonData = data
	} else if jsonStr != "" {
		jsonData = []byte(jsonStr)
	} else {
		return nil, nil
	}

	if !json.Valid(jsonData) {
		return nil, errors.New(ErrMsgInvalidJSON)
	}
	return json.RawMessage(jsonData), nil
}

// newEngine builds the engine from a YAML config file, or with defaults when
// path is empty.
func newEngine(configPath string) (*stamp.Engine, error) {
	if configPath == "" {
		return stamp.New()
	}
	cfg, err := stamp.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return stamp.NewFromConfig(cfg, nil)
}
