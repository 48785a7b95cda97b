package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

var outputFormats = []string{"text", "json", "yaml"}

func validOutput(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// result is anything a command prints. JSON and YAML come from the struct
// tags, text from the type itself.
type result interface {
	text() string
}

func render(w io.Writer, format string, r result) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		_, err := io.WriteString(w, r.text())
		return err
	}
}
