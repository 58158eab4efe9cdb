package render

import (
	"fmt"
	"io"

	"github.com/gitsift/gitsift/internal/analysis"
)

// MermaidRenderer draws the coupling section as a mermaid graph. The
// other sections are tabular rather than relational, so this format
// covers coupling only.
type MermaidRenderer struct{}

func (r *MermaidRenderer) Render(report *analysis.Report, w io.Writer) error {
	fmt.Fprintln(w, `%% temporal coupling: edge label is "commits together (degree)"`)
	fmt.Fprintln(w, "graph LR")

	if len(report.Coupling) == 0 {
		fmt.Fprintln(w, `  empty["no coupled files"]`)
		return nil
	}

	ids := make(map[string]string)
	var order []string
	for _, p := range report.Coupling {
		for _, path := range []string{p.FileA, p.FileB} {
			if _, ok := ids[path]; !ok {
				ids[path] = fmt.Sprintf("f%d", len(ids))
				order = append(order, path)
			}
		}
	}

	for _, path := range order {
		fmt.Fprintf(w, "  %s[\"%s\"]\n", ids[path], path)
	}
	for _, p := range report.Coupling {
		fmt.Fprintf(w, "  %s ---|\"%d (%.2f)\"| %s\n",
			ids[p.FileA], p.Coupled, p.Degree, ids[p.FileB])
	}

	return nil
}
