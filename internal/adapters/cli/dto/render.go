package dto

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes documents to w in a fixed format.
type Renderer struct {
	format string
	w      io.Writer
}

// NewRenderer returns a Renderer for format. Unknown formats fall back to
// JSON.
func NewRenderer(format string, w io.Writer) *Renderer {
	if format != FormatYAML {
		format = FormatJSON
	}
	return &Renderer{format: format, w: w}
}

// Format reports the effective output format.
func (r *Renderer) Format() string {
	return r.format
}

// Render encodes v followed by a newline.
func (r *Renderer) Render(v any) error {
	if r.format == FormatYAML {
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
