package analysis

import "time"

// Defaults applied when an option is left at its zero value.
const (
	DefaultHotspotTop         = 20
	DefaultCouplingTop        = 20
	DefaultCouplingMinCommits = 3
	DefaultMaxFilesPerCommit  = 30
	DefaultAuthorTop          = 15
	DefaultSiloMinCommits     = 2
)

// HotspotOptions tunes the hotspot ranking.
type HotspotOptions struct {
	Top int // result cap, default 20
}

// CouplingOptions tunes temporal-coupling detection.
type CouplingOptions struct {
	Top               int // result cap, default 20
	MinCommits        int // minimum co-occurrences for a pair to be reported, default 3
	MaxFilesPerCommit int // commits touching more distinct files are noise, default 30
}

// AuthorOptions tunes the contributor ranking.
type AuthorOptions struct {
	Top int // result cap, default 15
}

// SiloOptions tunes knowledge-silo detection.
type SiloOptions struct {
	MinCommits int // minimum commits for a single-author file to matter, default 2
}

// Options collects the per-analyzer tunables for a combined run. Zero
// values select the per-analyzer defaults. Now, when set, fixes the
// clock used by the code-age analysis.
type Options struct {
	Hotspots HotspotOptions
	Coupling CouplingOptions
	Authors  AuthorOptions
	Silos    SiloOptions
	Now      time.Time
}
