package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsift/gitsift/internal/history"
)

func TestAnalyzeAll(t *testing.T) {
	report := AnalyzeAll(sampleHistory(), Options{
		Coupling: CouplingOptions{MinCommits: 1},
		Now:      fixtureNow,
	})

	assert.Equal(t, 7, report.Summary.TotalCommits)
	assert.Equal(t, 2, report.Summary.TotalAuthors)

	require.NotNil(t, report.Summary.DateRange)
	assert.Equal(t, at(2025, 5, 1), report.Summary.DateRange.From, "from is the oldest commit")
	assert.Equal(t, at(2026, 8, 25), report.Summary.DateRange.To, "to is the newest commit")

	// Each section matches its standalone analyzer.
	assert.Equal(t, Hotspots(sampleHistory(), HotspotOptions{}), report.Hotspots)
	assert.Equal(t, Coupling(sampleHistory(), CouplingOptions{MinCommits: 1}), report.Coupling)
	assert.Equal(t, CodeAge(sampleHistory(), fixtureNow), report.CodeAge)
	assert.Equal(t, Authors(sampleHistory(), AuthorOptions{}), report.Authors)
	assert.Equal(t, KnowledgeSilos(sampleHistory(), SiloOptions{}), report.Silos)
}

func TestAnalyzeAll_EmptyInput(t *testing.T) {
	report := AnalyzeAll(nil, Options{})

	assert.Equal(t, 0, report.Summary.TotalCommits)
	assert.Equal(t, 0, report.Summary.TotalAuthors)
	assert.Nil(t, report.Summary.DateRange, "no commits means no date range")

	assert.Empty(t, report.Hotspots)
	assert.Empty(t, report.Coupling)
	assert.Empty(t, report.Authors)
	assert.Empty(t, report.Silos)
	assert.Equal(t, AgeBuckets{}, report.CodeAge.Buckets)
	assert.Equal(t, 0, report.CodeAge.TotalFiles)
}

func TestAnalyzeAll_SingleCommit(t *testing.T) {
	commits := []history.Commit{{
		Hash:   "only",
		Author: "Ann",
		Date:   at(2026, 8, 20),
		Files:  []history.FileChange{{Path: "main.go", Added: 10}},
	}}

	report := AnalyzeAll(commits, Options{Now: fixtureNow})

	assert.Equal(t, 1, report.Summary.TotalCommits)
	assert.Equal(t, 1, report.Summary.TotalAuthors)
	require.NotNil(t, report.Summary.DateRange)
	assert.Equal(t, report.Summary.DateRange.From, report.Summary.DateRange.To)
}

func TestAnalyzeAll_OptionsPassThrough(t *testing.T) {
	report := AnalyzeAll(sampleHistory(), Options{
		Hotspots: HotspotOptions{Top: 2},
		Coupling: CouplingOptions{MinCommits: 1, Top: 1},
		Authors:  AuthorOptions{Top: 1},
		Silos:    SiloOptions{MinCommits: 1},
		Now:      fixtureNow,
	})

	assert.Len(t, report.Hotspots, 2)
	assert.Len(t, report.Coupling, 1)
	assert.Len(t, report.Authors, 1)
	assert.Len(t, report.Silos, 3)
}
