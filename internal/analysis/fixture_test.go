package analysis

import (
	"time"

	"github.com/gitsift/gitsift/internal/history"
)

// fixtureNow is the analysis clock the code-age tests pin themselves to.
var fixtureNow = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}

// sampleHistory returns seven commits, newest first, across two authors
// (Alice 5, Bob 2) and five files. src/app.js is touched in six commits
// with a total churn of 71 by both authors; config.json is touched
// twice, by Alice only; src/app.js and src/utils.js co-change in three
// commits.
func sampleHistory() []history.Commit {
	return []history.Commit{
		{
			Hash: "c7", Author: "Alice", Date: at(2026, 8, 25), Message: "rework app entry point",
			Files: []history.FileChange{
				{Path: "src/app.js", Added: 10, Deleted: 5},
				{Path: "src/utils.js", Added: 3, Deleted: 1},
			},
		},
		{
			Hash: "c6", Author: "Bob", Date: at(2026, 8, 20), Message: "fix startup crash",
			Files: []history.FileChange{
				{Path: "src/app.js", Added: 8, Deleted: 2},
			},
		},
		{
			Hash: "c5", Author: "Alice", Date: at(2026, 8, 15), Message: "wire new config flag",
			Files: []history.FileChange{
				{Path: "src/app.js", Added: 6, Deleted: 6},
				{Path: "config.json", Added: 2, Deleted: 0},
			},
		},
		{
			Hash: "c4", Author: "Alice", Date: at(2026, 7, 30), Message: "extract shared helpers",
			Files: []history.FileChange{
				{Path: "src/app.js", Added: 9, Deleted: 1},
				{Path: "src/utils.js", Added: 2, Deleted: 2},
			},
		},
		{
			Hash: "c3", Author: "Bob", Date: at(2026, 6, 15), Message: "handle empty input",
			Files: []history.FileChange{
				{Path: "src/app.js", Added: 7, Deleted: 3},
				{Path: "src/utils.js", Added: 1, Deleted: 0},
			},
		},
		{
			Hash: "c2", Author: "Alice", Date: at(2026, 3, 1), Message: "document the app module",
			Files: []history.FileChange{
				{Path: "src/app.js", Added: 10, Deleted: 4},
				{Path: "README.md", Added: 20, Deleted: 0},
			},
		},
		{
			Hash: "c1", Author: "Alice", Date: at(2025, 5, 1), Message: "initial scaffolding",
			Files: []history.FileChange{
				{Path: "config.json", Added: 5, Deleted: 0},
				{Path: "docs/setup.md", Added: 30, Deleted: 0},
			},
		},
	}
}
