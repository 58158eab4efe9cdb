package analysis

import "time"

// HotspotEntry ranks one file by change frequency and churn.
type HotspotEntry struct {
	Path    string `json:"path" yaml:"path"`
	Commits int    `json:"commits" yaml:"commits"`
	Churn   int    `json:"churn" yaml:"churn"`
	Added   int    `json:"added" yaml:"added"`
	Deleted int    `json:"deleted" yaml:"deleted"`
	Authors int    `json:"authors" yaml:"authors"`
}

// CouplingPair is an unordered pair of files that tend to change in the
// same commit. FileA always holds the lexicographically smaller path.
type CouplingPair struct {
	FileA   string  `json:"file_a" yaml:"file_a"`
	FileB   string  `json:"file_b" yaml:"file_b"`
	Coupled int     `json:"coupled" yaml:"coupled"`
	Degree  float64 `json:"degree" yaml:"degree"`
}

// FileAge records how recently a file was last touched.
type FileAge struct {
	Path         string    `json:"path" yaml:"path"`
	AgeDays      int       `json:"age_days" yaml:"age_days"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
	FirstSeen    time.Time `json:"first_seen" yaml:"first_seen"`
}

// AgeBuckets partitions files by days since their last modification.
// Boundaries are inclusive: a file exactly 7 days old is fresh.
type AgeBuckets struct {
	Fresh   int `json:"fresh" yaml:"fresh"`     // <= 7 days
	Recent  int `json:"recent" yaml:"recent"`   // 8-30 days
	Aging   int `json:"aging" yaml:"aging"`     // 31-90 days
	Stale   int `json:"stale" yaml:"stale"`     // 91-365 days
	Ancient int `json:"ancient" yaml:"ancient"` // > 365 days
}

// CodeAgeReport buckets every file ever touched by recency of its most
// recent modification.
type CodeAgeReport struct {
	Buckets    AgeBuckets `json:"buckets" yaml:"buckets"`
	Oldest     []FileAge  `json:"oldest" yaml:"oldest"`
	Freshest   []FileAge  `json:"freshest" yaml:"freshest"`
	TotalFiles int        `json:"total_files" yaml:"total_files"`
}

// AuthorEntry ranks one contributor by commit count.
type AuthorEntry struct {
	Name         string `json:"name" yaml:"name"`
	Commits      int    `json:"commits" yaml:"commits"`
	Added        int    `json:"added" yaml:"added"`
	Deleted      int    `json:"deleted" yaml:"deleted"`
	FilesChanged int    `json:"files_changed" yaml:"files_changed"`
}

// SiloEntry flags a file whose entire history belongs to one author.
type SiloEntry struct {
	Path    string `json:"path" yaml:"path"`
	Author  string `json:"author" yaml:"author"`
	Commits int    `json:"commits" yaml:"commits"`
}

// DateRange spans the chronologically earliest and latest commits in
// the analyzed window.
type DateRange struct {
	From time.Time `json:"from" yaml:"from"`
	To   time.Time `json:"to" yaml:"to"`
}

// Summary describes the commit window a report covers. DateRange is nil
// when the window is empty.
type Summary struct {
	TotalCommits int        `json:"total_commits" yaml:"total_commits"`
	TotalAuthors int        `json:"total_authors" yaml:"total_authors"`
	DateRange    *DateRange `json:"date_range" yaml:"date_range"`
}

// Report combines the five analyses over one commit window. Every field
// is recomputed in full on each run; nothing is mutated afterwards.
type Report struct {
	Summary  Summary        `json:"summary" yaml:"summary"`
	Hotspots []HotspotEntry `json:"hotspots" yaml:"hotspots"`
	Coupling []CouplingPair `json:"coupling" yaml:"coupling"`
	CodeAge  CodeAgeReport  `json:"code_age" yaml:"code_age"`
	Authors  []AuthorEntry  `json:"authors" yaml:"authors"`
	Silos    []SiloEntry    `json:"knowledge_silos" yaml:"knowledge_silos"`
}
