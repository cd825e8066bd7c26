package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteOutput renders data to w as "yaml" or "json" (case-insensitive).
// JSON output is indented by two spaces and ends with a newline. Types such
// as models.Map keep their key order in both formats.
func WriteOutput(w io.Writer, data any, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("error writing data to JSON: %w", err)
		}
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("error writing data to YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error writing data to YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	return nil
}
