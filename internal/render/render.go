package render

import (
	"fmt"
	"io"

	"github.com/gitsift/gitsift/internal/analysis"
)

// Format identifies an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatMermaid  Format = "mermaid"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

const dateFormat = "2006-01-02"

// Renderer writes an analysis report to w in one output format.
// Renderers only traverse the report; they never recompute anything.
type Renderer interface {
	Render(report *analysis.Report, w io.Writer) error
}

// New returns the renderer for the given format. An empty format means
// text.
func New(format Format) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &TextRenderer{}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{}, nil
	case FormatMermaid:
		return &MermaidRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Formats lists the supported format names, for flag help text.
func Formats() []string {
	return []string{
		string(FormatText),
		string(FormatMarkdown),
		string(FormatMermaid),
		string(FormatJSON),
		string(FormatYAML),
	}
}
