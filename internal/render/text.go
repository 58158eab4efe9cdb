package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gitsift/gitsift/internal/analysis"
)

// TextRenderer writes the human-readable terminal report.
type TextRenderer struct{}

func (r *TextRenderer) Render(report *analysis.Report, w io.Writer) error {
	fmt.Fprintf(w, "📊 Repository Analysis\n")
	fmt.Fprintf(w, "Commits: %d | Authors: %d\n", report.Summary.TotalCommits, report.Summary.TotalAuthors)
	if dr := report.Summary.DateRange; dr != nil {
		fmt.Fprintf(w, "Range: %s..%s\n", dr.From.Format(dateFormat), dr.To.Format(dateFormat))
	}

	if err := r.hotspots(w, report.Hotspots); err != nil {
		return err
	}
	if err := r.coupling(w, report.Coupling); err != nil {
		return err
	}
	if err := r.codeAge(w, report.CodeAge); err != nil {
		return err
	}
	if err := r.authors(w, report.Authors); err != nil {
		return err
	}
	return r.silos(w, report.Silos)
}

func (r *TextRenderer) hotspots(w io.Writer, entries []analysis.HotspotEntry) error {
	fmt.Fprintf(w, "\n🔥 Hotspots\n")
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  FILE\tCOMMITS\tCHURN\tADDED\tDELETED\tAUTHORS")
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%d\t%d\n",
			e.Path, e.Commits, e.Churn, e.Added, e.Deleted, e.Authors)
	}
	return tw.Flush()
}

func (r *TextRenderer) coupling(w io.Writer, pairs []analysis.CouplingPair) error {
	fmt.Fprintf(w, "\n🔗 Temporal Coupling\n")
	if len(pairs) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  FILE A\tFILE B\tTOGETHER\tDEGREE")
	for _, p := range pairs {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%.2f\n", p.FileA, p.FileB, p.Coupled, p.Degree)
	}
	return tw.Flush()
}

func (r *TextRenderer) codeAge(w io.Writer, report analysis.CodeAgeReport) error {
	fmt.Fprintf(w, "\n📅 Code Age\n")
	if report.TotalFiles == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}

	b := report.Buckets
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  fresh (0-7d)\t%d\n", b.Fresh)
	fmt.Fprintf(tw, "  recent (8-30d)\t%d\n", b.Recent)
	fmt.Fprintf(tw, "  aging (31-90d)\t%d\n", b.Aging)
	fmt.Fprintf(tw, "  stale (91-365d)\t%d\n", b.Stale)
	fmt.Fprintf(tw, "  ancient (>365d)\t%d\n", b.Ancient)
	fmt.Fprintf(tw, "  total files\t%d\n", report.TotalFiles)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Oldest) > 0 {
		fmt.Fprintln(w, "\n  Oldest:")
		if err := r.ageList(w, report.Oldest); err != nil {
			return err
		}
	}
	if len(report.Freshest) > 0 {
		fmt.Fprintln(w, "\n  Freshest:")
		if err := r.ageList(w, report.Freshest); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) ageList(w io.Writer, files []analysis.FileAge) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range files {
		fmt.Fprintf(tw, "    %s\t%dd\tlast change %s\n",
			f.Path, f.AgeDays, f.LastModified.Format(dateFormat))
	}
	return tw.Flush()
}

func (r *TextRenderer) authors(w io.Writer, entries []analysis.AuthorEntry) error {
	fmt.Fprintf(w, "\n👥 Authors\n")
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  AUTHOR\tCOMMITS\tADDED\tDELETED\tFILES")
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%d\n",
			e.Name, e.Commits, e.Added, e.Deleted, e.FilesChanged)
	}
	return tw.Flush()
}

func (r *TextRenderer) silos(w io.Writer, entries []analysis.SiloEntry) error {
	fmt.Fprintf(w, "\n🤐 Knowledge Silos\n")
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  FILE\tSOLE AUTHOR\tCOMMITS")
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", e.Path, e.Author, e.Commits)
	}
	return tw.Flush()
}
