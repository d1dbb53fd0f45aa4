// Package renderers writes a finished report for people and programs.
package renderers

import (
	"io"
	"strings"

	"log-stats/internal/models"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

type Renderer interface {
	Render(w io.Writer, report *models.Report) error
}

// New returns the renderer for format. Format names are case-insensitive.
func New(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatTable:
		return NewTableRenderer(), nil
	default:
		return nil, errUnknownFormat(format)
	}
}
