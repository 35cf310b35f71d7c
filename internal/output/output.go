// internal/output/output.go
//
// Result encoding for the CLI: plain text for humans, JSON or YAML for
// pipelines.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Texter lets a result type control its own plain-text rendering. Values
// without it fall back to JSON in text mode.
type Texter interface {
	Text() string
}

// Normalize maps format aliases onto the canonical names; unknown values
// are an error.
func Normalize(format string) (string, error) {
	switch format {
	case "", FormatText, "txt":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("output: unknown format %q", format)
	}
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(v)
	case FormatText:
		if t, ok := v.(Texter); ok {
			_, err := fmt.Fprintln(w, t.Text())
			return err
		}
		fallthrough
	default:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(v)
	}
}
