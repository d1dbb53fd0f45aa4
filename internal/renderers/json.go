package renderers

import (
	"encoding/json"
	"fmt"
	"io"

	"log-stats/internal/models"
)

type jsonRenderer struct{}

// NewJSONRenderer renders the canonical report schema, pretty-printed. Map keys are sorted so the
// same report always renders to the same bytes.
func NewJSONRenderer() Renderer {
	return &jsonRenderer{}
}

func (r *jsonRenderer) Render(w io.Writer, report *models.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
