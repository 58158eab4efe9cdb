package history

import "time"

// Commit is one record in a repository's change log. Sequences of
// commits are ordered newest first, matching git log output; the
// code-age analysis depends on that ordering.
type Commit struct {
	Hash    string       `json:"hash" yaml:"hash"`
	Author  string       `json:"author" yaml:"author"`
	Date    time.Time    `json:"date" yaml:"date"`
	Message string       `json:"message" yaml:"message"`
	Files   []FileChange `json:"files" yaml:"files"`
}

// FileChange records one file touched by a commit. The path is the
// unique file key; no case or separator normalization is applied.
// Binary changes carry zero line counts but still count as touches.
type FileChange struct {
	Path    string `json:"path" yaml:"path"`
	Added   int    `json:"added" yaml:"added"`
	Deleted int    `json:"deleted" yaml:"deleted"`
	Binary  bool   `json:"binary,omitempty" yaml:"binary,omitempty"`
}
