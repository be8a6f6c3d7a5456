// Package output provides output formatting for the surveyauth CLI.
package output

import (
	"fmt"
	"io"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// NewFormatter creates a formatter for the given format.
// Unknown formats fall back to JSON.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatTable:
		return &TableFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &JSONFormatter{}
	}
}
