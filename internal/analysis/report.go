package analysis

import (
	"golang.org/x/sync/errgroup"

	"github.com/gitsift/gitsift/internal/history"
)

// AnalyzeAll runs the five analyses over the same commit sequence and
// assembles the combined report. The analyzers are pure functions that
// share no state, so they run concurrently; each one builds its own
// maps from scratch and writes a distinct report field.
func AnalyzeAll(commits []history.Commit, opts Options) *Report {
	report := &Report{}

	var g errgroup.Group
	g.Go(func() error {
		report.Hotspots = Hotspots(commits, opts.Hotspots)
		return nil
	})
	g.Go(func() error {
		report.Coupling = Coupling(commits, opts.Coupling)
		return nil
	})
	g.Go(func() error {
		report.CodeAge = CodeAge(commits, opts.Now)
		return nil
	})
	g.Go(func() error {
		report.Authors = Authors(commits, opts.Authors)
		return nil
	})
	g.Go(func() error {
		report.Silos = KnowledgeSilos(commits, opts.Silos)
		return nil
	})
	// The analyzers never fail; Wait only synchronizes the field writes.
	_ = g.Wait()

	report.Summary = summarize(commits)
	return report
}

// summarize computes the window header: commit and author totals plus
// the covered date range, nil when there are no commits.
func summarize(commits []history.Commit) Summary {
	authors := make(map[string]bool)
	for _, commit := range commits {
		authors[commit.Author] = true
	}

	s := Summary{
		TotalCommits: len(commits),
		TotalAuthors: len(authors),
	}
	if len(commits) > 0 {
		// Newest first: the last element is the chronologically earliest.
		s.DateRange = &DateRange{
			From: commits[len(commits)-1].Date,
			To:   commits[0].Date,
		}
	}
	return s
}
