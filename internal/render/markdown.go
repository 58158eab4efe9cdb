package render

import (
	"fmt"
	"io"

	"github.com/gitsift/gitsift/internal/analysis"
)

// MarkdownRenderer writes the report as a markdown document, one table
// per section. Suitable for pasting into PRs or wikis.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(report *analysis.Report, w io.Writer) error {
	fmt.Fprintln(w, "# Repository Analysis")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- Commits: %d\n", report.Summary.TotalCommits)
	fmt.Fprintf(w, "- Authors: %d\n", report.Summary.TotalAuthors)
	if dr := report.Summary.DateRange; dr != nil {
		fmt.Fprintf(w, "- Range: %s to %s\n", dr.From.Format(dateFormat), dr.To.Format(dateFormat))
	}

	r.hotspots(w, report.Hotspots)
	r.coupling(w, report.Coupling)
	r.codeAge(w, report.CodeAge)
	r.authors(w, report.Authors)
	r.silos(w, report.Silos)

	return nil
}

func (r *MarkdownRenderer) hotspots(w io.Writer, entries []analysis.HotspotEntry) {
	fmt.Fprintln(w, "\n## Hotspots")
	if len(entries) == 0 {
		fmt.Fprintln(w, "\n_none_")
		return
	}

	fmt.Fprintln(w, "\n| File | Commits | Churn | Added | Deleted | Authors |")
	fmt.Fprintln(w, "| --- | ---: | ---: | ---: | ---: | ---: |")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d | %d |\n",
			e.Path, e.Commits, e.Churn, e.Added, e.Deleted, e.Authors)
	}
}

func (r *MarkdownRenderer) coupling(w io.Writer, pairs []analysis.CouplingPair) {
	fmt.Fprintln(w, "\n## Temporal Coupling")
	if len(pairs) == 0 {
		fmt.Fprintln(w, "\n_none_")
		return
	}

	fmt.Fprintln(w, "\n| File A | File B | Together | Degree |")
	fmt.Fprintln(w, "| --- | --- | ---: | ---: |")
	for _, p := range pairs {
		fmt.Fprintf(w, "| %s | %s | %d | %.2f |\n", p.FileA, p.FileB, p.Coupled, p.Degree)
	}
}

func (r *MarkdownRenderer) codeAge(w io.Writer, report analysis.CodeAgeReport) {
	fmt.Fprintln(w, "\n## Code Age")
	if report.TotalFiles == 0 {
		fmt.Fprintln(w, "\n_none_")
		return
	}

	b := report.Buckets
	fmt.Fprintln(w, "\n| Bucket | Files |")
	fmt.Fprintln(w, "| --- | ---: |")
	fmt.Fprintf(w, "| fresh (0-7d) | %d |\n", b.Fresh)
	fmt.Fprintf(w, "| recent (8-30d) | %d |\n", b.Recent)
	fmt.Fprintf(w, "| aging (31-90d) | %d |\n", b.Aging)
	fmt.Fprintf(w, "| stale (91-365d) | %d |\n", b.Stale)
	fmt.Fprintf(w, "| ancient (>365d) | %d |\n", b.Ancient)
	fmt.Fprintf(w, "| total | %d |\n", report.TotalFiles)

	if len(report.Oldest) > 0 {
		fmt.Fprintln(w, "\n### Oldest")
		r.ageList(w, report.Oldest)
	}
	if len(report.Freshest) > 0 {
		fmt.Fprintln(w, "\n### Freshest")
		r.ageList(w, report.Freshest)
	}
}

func (r *MarkdownRenderer) ageList(w io.Writer, files []analysis.FileAge) {
	fmt.Fprintln(w, "\n| File | Age (days) | Last Change |")
	fmt.Fprintln(w, "| --- | ---: | --- |")
	for _, f := range files {
		fmt.Fprintf(w, "| %s | %d | %s |\n", f.Path, f.AgeDays, f.LastModified.Format(dateFormat))
	}
}

func (r *MarkdownRenderer) authors(w io.Writer, entries []analysis.AuthorEntry) {
	fmt.Fprintln(w, "\n## Authors")
	if len(entries) == 0 {
		fmt.Fprintln(w, "\n_none_")
		return
	}

	fmt.Fprintln(w, "\n| Author | Commits | Added | Deleted | Files |")
	fmt.Fprintln(w, "| --- | ---: | ---: | ---: | ---: |")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d |\n",
			e.Name, e.Commits, e.Added, e.Deleted, e.FilesChanged)
	}
}

func (r *MarkdownRenderer) silos(w io.Writer, entries []analysis.SiloEntry) {
	fmt.Fprintln(w, "\n## Knowledge Silos")
	if len(entries) == 0 {
		fmt.Fprintln(w, "\n_none_")
		return
	}

	fmt.Fprintln(w, "\n| File | Sole Author | Commits |")
	fmt.Fprintln(w, "| --- | --- | ---: |")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | %s | %d |\n", e.Path, e.Author, e.Commits)
	}
}
