package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gitsift/gitsift/internal/analysis"
)

// YAMLRenderer writes the report as YAML.
type YAMLRenderer struct{}

func (r *YAMLRenderer) Render(report *analysis.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
