package analysis

import (
	"sort"

	"github.com/gitsift/gitsift/internal/history"
)

// Authors ranks contributors by commit count. Identity is the exact
// author string; two spellings of the same person stay two entries.
// Churn never affects the order, only the reported line counts.
func Authors(commits []history.Commit, opts AuthorOptions) []AuthorEntry {
	if opts.Top <= 0 {
		opts.Top = DefaultAuthorTop
	}

	type authorStats struct {
		commits int
		added   int
		deleted int
		files   map[string]bool
	}

	stats := make(map[string]*authorStats)
	for _, commit := range commits {
		as, ok := stats[commit.Author]
		if !ok {
			as = &authorStats{files: make(map[string]bool)}
			stats[commit.Author] = as
		}
		as.commits++
		for _, file := range commit.Files {
			as.added += file.Added
			as.deleted += file.Deleted
			as.files[file.Path] = true
		}
	}

	entries := make([]AuthorEntry, 0, len(stats))
	for name, as := range stats {
		entries = append(entries, AuthorEntry{
			Name:         name,
			Commits:      as.commits,
			Added:        as.added,
			Deleted:      as.deleted,
			FilesChanged: len(as.files),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Commits != entries[j].Commits {
			return entries[i].Commits > entries[j].Commits
		}
		return entries[i].Name < entries[j].Name
	})

	if len(entries) > opts.Top {
		entries = entries[:opts.Top]
	}
	return entries
}
