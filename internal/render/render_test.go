package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gitsift/gitsift/internal/analysis"
)

func sampleReport() *analysis.Report {
	from := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	return &analysis.Report{
		Summary: analysis.Summary{
			TotalCommits: 7,
			TotalAuthors: 2,
			DateRange:    &analysis.DateRange{From: from, To: to},
		},
		Hotspots: []analysis.HotspotEntry{
			{Path: "src/app.js", Commits: 6, Churn: 71, Added: 50, Deleted: 21, Authors: 2},
			{Path: "src/utils.js", Commits: 3, Churn: 9, Added: 6, Deleted: 3, Authors: 2},
		},
		Coupling: []analysis.CouplingPair{
			{FileA: "src/app.js", FileB: "src/utils.js", Coupled: 3, Degree: 1.0},
		},
		CodeAge: analysis.CodeAgeReport{
			Buckets: analysis.AgeBuckets{Fresh: 2, Recent: 1, Stale: 1, Ancient: 1},
			Oldest: []analysis.FileAge{
				{Path: "docs/setup.md", AgeDays: 482, LastModified: from, FirstSeen: from},
			},
			Freshest: []analysis.FileAge{
				{Path: "src/app.js", AgeDays: 1, LastModified: to, FirstSeen: from},
			},
			TotalFiles: 5,
		},
		Authors: []analysis.AuthorEntry{
			{Name: "Alice", Commits: 5, Added: 97, Deleted: 19, FilesChanged: 5},
			{Name: "Bob", Commits: 2, Added: 16, Deleted: 5, FilesChanged: 2},
		},
		Silos: []analysis.SiloEntry{
			{Path: "config.json", Author: "Alice", Commits: 2},
		},
	}
}

func TestNew(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			r, err := New(Format(format))
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	t.Run("empty means text", func(t *testing.T) {
		r, err := New("")
		require.NoError(t, err)
		assert.IsType(t, &TextRenderer{}, r)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := New("csv")
		assert.Error(t, err)
	})
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(sampleReport(), &buf))
	out := buf.String()

	assert.Contains(t, out, "Commits: 7 | Authors: 2")
	assert.Contains(t, out, "Range: 2025-05-01..2026-08-25")
	assert.Contains(t, out, "Hotspots")
	assert.Contains(t, out, "src/app.js")
	assert.Contains(t, out, "71")
	assert.Contains(t, out, "Temporal Coupling")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "Code Age")
	assert.Contains(t, out, "docs/setup.md")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Knowledge Silos")
	assert.Contains(t, out, "config.json")
}

func TestTextRenderer_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&analysis.Report{}, &buf))

	assert.Contains(t, buf.String(), "Commits: 0 | Authors: 0")
	assert.Contains(t, buf.String(), "(none)")
	assert.NotContains(t, buf.String(), "Range:", "empty history has no date range")
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownRenderer{}).Render(sampleReport(), &buf))
	out := buf.String()

	assert.Contains(t, out, "# Repository Analysis")
	assert.Contains(t, out, "## Hotspots")
	assert.Contains(t, out, "| File | Commits | Churn | Added | Deleted | Authors |")
	assert.Contains(t, out, "| src/app.js | 6 | 71 | 50 | 21 | 2 |")
	assert.Contains(t, out, "## Temporal Coupling")
	assert.Contains(t, out, "| src/app.js | src/utils.js | 3 | 1.00 |")
	assert.Contains(t, out, "## Code Age")
	assert.Contains(t, out, "### Oldest")
	assert.Contains(t, out, "## Authors")
	assert.Contains(t, out, "## Knowledge Silos")
}

func TestMarkdownRenderer_EmptySections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownRenderer{}).Render(&analysis.Report{}, &buf))

	assert.Contains(t, buf.String(), "_none_")
}

func TestMermaidRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MermaidRenderer{}).Render(sampleReport(), &buf))
	out := buf.String()

	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, `f0["src/app.js"]`)
	assert.Contains(t, out, `f1["src/utils.js"]`)
	assert.Contains(t, out, `f0 ---|"3 (1.00)"| f1`)
}

func TestMermaidRenderer_NoCoupling(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MermaidRenderer{}).Render(&analysis.Report{}, &buf))

	assert.Contains(t, buf.String(), "graph LR")
	assert.Contains(t, buf.String(), "no coupled files")
}

func TestJSONRenderer_RoundTrip(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(report, &buf))

	var decoded analysis.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report, &decoded)

	assert.Contains(t, buf.String(), `"knowledge_silos"`)
	assert.Contains(t, buf.String(), `"total_commits"`)
}

func TestYAMLRenderer_RoundTrip(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, (&YAMLRenderer{}).Render(report, &buf))

	var decoded analysis.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report, &decoded)

	assert.True(t, strings.HasPrefix(buf.String(), "summary:"))
}
