package analysis

import (
	"sort"

	"github.com/gitsift/gitsift/internal/history"
)

// Hotspots ranks files by how often they change and how much churn
// those changes carry. Binary changes count toward a file's commit
// total but add nothing to churn.
func Hotspots(commits []history.Commit, opts HotspotOptions) []HotspotEntry {
	if opts.Top <= 0 {
		opts.Top = DefaultHotspotTop
	}

	type fileStats struct {
		commits int
		added   int
		deleted int
		authors map[string]bool
	}

	stats := make(map[string]*fileStats)
	for _, commit := range commits {
		for _, file := range commit.Files {
			fs, ok := stats[file.Path]
			if !ok {
				fs = &fileStats{authors: make(map[string]bool)}
				stats[file.Path] = fs
			}
			fs.commits++
			fs.added += file.Added
			fs.deleted += file.Deleted
			fs.authors[commit.Author] = true
		}
	}

	entries := make([]HotspotEntry, 0, len(stats))
	for path, fs := range stats {
		entries = append(entries, HotspotEntry{
			Path:    path,
			Commits: fs.commits,
			Churn:   fs.added + fs.deleted,
			Added:   fs.added,
			Deleted: fs.deleted,
			Authors: len(fs.authors),
		})
	}

	// Commit count decides, churn breaks ties, path keeps equal entries
	// in a stable order across runs.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Commits != entries[j].Commits {
			return entries[i].Commits > entries[j].Commits
		}
		if entries[i].Churn != entries[j].Churn {
			return entries[i].Churn > entries[j].Churn
		}
		return entries[i].Path < entries[j].Path
	})

	if len(entries) > opts.Top {
		entries = entries[:opts.Top]
	}
	return entries
}
