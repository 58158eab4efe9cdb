package render

import (
	"encoding/json"
	"io"

	"github.com/gitsift/gitsift/internal/analysis"
)

// JSONRenderer writes the report as indented JSON, for piping into
// other tools.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(report *analysis.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
