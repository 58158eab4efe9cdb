package analysis

import (
	"math"
	"sort"

	"github.com/gitsift/gitsift/internal/history"
)

// pairKey identifies an unordered file pair. A holds the
// lexicographically smaller path so (x,y) and (y,x) collide, without
// the key-construction bugs a joined string would invite for paths
// containing arbitrary characters.
type pairKey struct {
	A, B string
}

func makePairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{A: a, B: b}
}

// Coupling detects files that tend to change in the same commit.
// Commits touching fewer than two distinct files carry no signal, and
// commits touching more than MaxFilesPerCommit distinct files (mass
// renames, vendoring) would drown real signal in a near-complete graph;
// neither kind contributes to pair or per-file totals. Degree
// normalizes a pair's co-occurrence count against the busier partner's
// overall change frequency, so a rarely-touched file that always moves
// with a hot one still scores high.
func Coupling(commits []history.Commit, opts CouplingOptions) []CouplingPair {
	if opts.Top <= 0 {
		opts.Top = DefaultCouplingTop
	}
	if opts.MinCommits <= 0 {
		opts.MinCommits = DefaultCouplingMinCommits
	}
	if opts.MaxFilesPerCommit <= 0 {
		opts.MaxFilesPerCommit = DefaultMaxFilesPerCommit
	}

	pairCounts := make(map[pairKey]int)
	fileCounts := make(map[string]int)

	for _, commit := range commits {
		paths := distinctPaths(commit.Files)
		if len(paths) < 2 || len(paths) > opts.MaxFilesPerCommit {
			continue
		}

		for _, path := range paths {
			fileCounts[path]++
		}
		for i := 0; i < len(paths); i++ {
			for j := i + 1; j < len(paths); j++ {
				pairCounts[makePairKey(paths[i], paths[j])]++
			}
		}
	}

	pairs := make([]CouplingPair, 0, len(pairCounts))
	for key, coupled := range pairCounts {
		if coupled < opts.MinCommits {
			continue
		}
		// A pair cannot co-occur more often than either file changes,
		// so degree always lands in [0,1].
		degree := float64(coupled) / float64(min(fileCounts[key.A], fileCounts[key.B]))
		pairs = append(pairs, CouplingPair{
			FileA:   key.A,
			FileB:   key.B,
			Coupled: coupled,
			Degree:  round2(degree),
		})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Coupled != pairs[j].Coupled {
			return pairs[i].Coupled > pairs[j].Coupled
		}
		if pairs[i].Degree != pairs[j].Degree {
			return pairs[i].Degree > pairs[j].Degree
		}
		if pairs[i].FileA != pairs[j].FileA {
			return pairs[i].FileA < pairs[j].FileA
		}
		return pairs[i].FileB < pairs[j].FileB
	})

	if len(pairs) > opts.Top {
		pairs = pairs[:opts.Top]
	}
	return pairs
}

// distinctPaths returns the deduplicated, sorted paths a commit touched.
func distinctPaths(files []history.FileChange) []string {
	seen := make(map[string]bool, len(files))
	paths := make([]string, 0, len(files))
	for _, file := range files {
		if seen[file.Path] {
			continue
		}
		seen[file.Path] = true
		paths = append(paths, file.Path)
	}
	sort.Strings(paths)
	return paths
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
