package analysis

import (
	"sort"

	"github.com/gitsift/gitsift/internal/history"
)

// siloCap bounds the silo list. The list is meant to highlight top
// risk, not enumerate every single-author file in a large repository,
// so the cap is fixed rather than configurable.
const siloCap = 30

// KnowledgeSilos flags files whose whole history belongs to a single
// author and that saw at least MinCommits changes. One drive-by touch
// by a second person is enough to clear a file from the list.
func KnowledgeSilos(commits []history.Commit, opts SiloOptions) []SiloEntry {
	if opts.MinCommits <= 0 {
		opts.MinCommits = DefaultSiloMinCommits
	}

	type fileAuthors struct {
		authors map[string]bool
		commits int
	}

	stats := make(map[string]*fileAuthors)
	for _, commit := range commits {
		for _, file := range commit.Files {
			fa, ok := stats[file.Path]
			if !ok {
				fa = &fileAuthors{authors: make(map[string]bool)}
				stats[file.Path] = fa
			}
			fa.authors[commit.Author] = true
			fa.commits++
		}
	}

	entries := make([]SiloEntry, 0)
	for path, fa := range stats {
		if len(fa.authors) != 1 || fa.commits < opts.MinCommits {
			continue
		}
		var author string
		for name := range fa.authors {
			author = name
		}
		entries = append(entries, SiloEntry{Path: path, Author: author, Commits: fa.commits})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Commits != entries[j].Commits {
			return entries[i].Commits > entries[j].Commits
		}
		return entries[i].Path < entries[j].Path
	})

	if len(entries) > siloCap {
		entries = entries[:siloCap]
	}
	return entries
}
