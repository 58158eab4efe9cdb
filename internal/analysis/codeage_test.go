package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsift/gitsift/internal/history"
)

func TestCodeAge(t *testing.T) {
	report := CodeAge(sampleHistory(), fixtureNow)

	assert.Equal(t, 5, report.TotalFiles)
	assert.Equal(t, 2, report.Buckets.Fresh, "src/app.js and src/utils.js were touched yesterday")
	assert.Equal(t, 1, report.Buckets.Recent, "config.json is 11 days old")
	assert.Equal(t, 0, report.Buckets.Aging)
	assert.Equal(t, 1, report.Buckets.Stale, "README.md is 178 days old")
	assert.Equal(t, 1, report.Buckets.Ancient, "docs/setup.md is 482 days old")

	sum := report.Buckets.Fresh + report.Buckets.Recent + report.Buckets.Aging +
		report.Buckets.Stale + report.Buckets.Ancient
	assert.Equal(t, report.TotalFiles, sum, "every file lands in exactly one bucket")
}

func TestCodeAge_FirstAndLastSeen(t *testing.T) {
	report := CodeAge(sampleHistory(), fixtureNow)

	var app *FileAge
	for i := range report.Freshest {
		if report.Freshest[i].Path == "src/app.js" {
			app = &report.Freshest[i]
		}
	}
	require.NotNil(t, app)
	assert.Equal(t, at(2026, 8, 25), app.LastModified, "first walk occurrence fixes the last touch")
	assert.Equal(t, at(2026, 3, 1), app.FirstSeen, "final walk occurrence fixes the earliest touch")
	assert.Equal(t, 1, app.AgeDays)
}

func TestCodeAge_OldestAndFreshest(t *testing.T) {
	report := CodeAge(sampleHistory(), fixtureNow)

	require.NotEmpty(t, report.Oldest)
	assert.Equal(t, "docs/setup.md", report.Oldest[0].Path)
	for i := 1; i < len(report.Oldest); i++ {
		assert.GreaterOrEqual(t, report.Oldest[i-1].AgeDays, report.Oldest[i].AgeDays)
	}

	require.NotEmpty(t, report.Freshest)
	assert.Equal(t, "src/app.js", report.Freshest[0].Path)
	for i := 1; i < len(report.Freshest); i++ {
		assert.LessOrEqual(t, report.Freshest[i-1].AgeDays, report.Freshest[i].AgeDays)
	}
}

func TestCodeAge_TopListsCapped(t *testing.T) {
	now := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	var commits []history.Commit
	for i := 0; i < 40; i++ {
		commits = append(commits, history.Commit{
			Hash:   fmt.Sprintf("c%d", i),
			Author: "Ann",
			Date:   now.AddDate(0, 0, -i),
			Files:  []history.FileChange{{Path: fmt.Sprintf("file%02d.go", i)}},
		})
	}

	report := CodeAge(commits, now)
	assert.Equal(t, 40, report.TotalFiles)
	assert.Len(t, report.Oldest, 15)
	assert.Len(t, report.Freshest, 15)
}

func TestCodeAge_BucketBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		days   int
		bucket string
	}{
		{0, "fresh"},
		{7, "fresh"},
		{8, "recent"},
		{30, "recent"},
		{31, "aging"},
		{90, "aging"},
		{91, "stale"},
		{365, "stale"},
		{366, "ancient"},
	}

	for _, test := range tests {
		commits := []history.Commit{{
			Hash:   "c",
			Author: "Ann",
			Date:   now.AddDate(0, 0, -test.days),
			Files:  []history.FileChange{{Path: "f.go"}},
		}}

		report := CodeAge(commits, now)
		got := ""
		switch {
		case report.Buckets.Fresh == 1:
			got = "fresh"
		case report.Buckets.Recent == 1:
			got = "recent"
		case report.Buckets.Aging == 1:
			got = "aging"
		case report.Buckets.Stale == 1:
			got = "stale"
		case report.Buckets.Ancient == 1:
			got = "ancient"
		}
		if got != test.bucket {
			t.Errorf("age %d days: expected bucket %s, got %s", test.days, test.bucket, got)
		}
	}
}

func TestCodeAge_PartialDaysFloor(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	commits := []history.Commit{{
		Hash:   "c",
		Author: "Ann",
		// 7 days and 11 hours ago still floors to 7 full days: fresh.
		Date:  now.Add(-(7*24 + 11) * time.Hour),
		Files: []history.FileChange{{Path: "f.go"}},
	}}

	report := CodeAge(commits, now)
	assert.Equal(t, 1, report.Buckets.Fresh)
	assert.Equal(t, 7, report.Freshest[0].AgeDays)
}

func TestCodeAge_EmptyInput(t *testing.T) {
	report := CodeAge(nil, fixtureNow)

	assert.Equal(t, 0, report.TotalFiles)
	assert.Equal(t, AgeBuckets{}, report.Buckets)
	assert.Empty(t, report.Oldest)
	assert.Empty(t, report.Freshest)
}
