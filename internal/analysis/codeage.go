package analysis

import (
	"sort"
	"time"

	"github.com/gitsift/gitsift/internal/history"
)

// Age bucket boundaries in days, each inclusive.
const (
	freshMaxDays  = 7
	recentMaxDays = 30
	agingMaxDays  = 90
	staleMaxDays  = 365
)

// ageTop caps the oldest and freshest lists.
const ageTop = 15

// CodeAge buckets every file by days since its most recent touch,
// measured against now (the current clock when now is zero).
//
// The commit sequence must be newest first: the first time a path
// appears in the walk fixes its last-modified date and is never
// overwritten, and the final time it appears fixes its first-seen date.
// The analyzer cannot detect a violated ordering contract; ages are
// simply wrong if the caller breaks it.
func CodeAge(commits []history.Commit, now time.Time) CodeAgeReport {
	if now.IsZero() {
		now = time.Now()
	}

	type fileDates struct {
		lastModified time.Time
		firstSeen    time.Time
	}

	dates := make(map[string]*fileDates)
	for _, commit := range commits {
		for _, file := range commit.Files {
			if fd, ok := dates[file.Path]; ok {
				fd.firstSeen = commit.Date
			} else {
				dates[file.Path] = &fileDates{lastModified: commit.Date, firstSeen: commit.Date}
			}
		}
	}

	ages := make([]FileAge, 0, len(dates))
	for path, fd := range dates {
		ages = append(ages, FileAge{
			Path:         path,
			AgeDays:      int(now.Sub(fd.lastModified).Hours() / 24),
			LastModified: fd.lastModified,
			FirstSeen:    fd.firstSeen,
		})
	}

	var report CodeAgeReport
	report.TotalFiles = len(ages)
	for _, fa := range ages {
		switch {
		case fa.AgeDays <= freshMaxDays:
			report.Buckets.Fresh++
		case fa.AgeDays <= recentMaxDays:
			report.Buckets.Recent++
		case fa.AgeDays <= agingMaxDays:
			report.Buckets.Aging++
		case fa.AgeDays <= staleMaxDays:
			report.Buckets.Stale++
		default:
			report.Buckets.Ancient++
		}
	}

	sort.Slice(ages, func(i, j int) bool {
		if ages[i].AgeDays != ages[j].AgeDays {
			return ages[i].AgeDays > ages[j].AgeDays
		}
		return ages[i].Path < ages[j].Path
	})
	report.Oldest = topAges(ages, ageTop)

	sort.Slice(ages, func(i, j int) bool {
		if ages[i].AgeDays != ages[j].AgeDays {
			return ages[i].AgeDays < ages[j].AgeDays
		}
		return ages[i].Path < ages[j].Path
	})
	report.Freshest = topAges(ages, ageTop)

	return report
}

// topAges copies the first n entries so Oldest and Freshest do not
// share a backing array with each other.
func topAges(ages []FileAge, n int) []FileAge {
	if len(ages) > n {
		ages = ages[:n]
	}
	out := make([]FileAge, len(ages))
	copy(out, ages)
	return out
}
