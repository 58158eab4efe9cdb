package git

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gitsift/gitsift/internal/history"
)

// Separators for the git log pretty format. Control characters cannot
// appear in author names or commit subjects, unlike '|', which does
// turn up in real commit messages.
const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

// prettyFormat renders each commit as
// <RS>hash<US>author<US>date<US>subject, followed by numstat lines.
const prettyFormat = "%x1e%H%x1f%an%x1f%ad%x1f%s"

// ParseLog parses git log --numstat output produced with prettyFormat
// into commit records, newest first. The parser owns well-formedness:
// a malformed header, numstat line, or unparseable date is an error,
// never a silent skip, so downstream analysis can trust every record.
func ParseLog(output string) ([]history.Commit, error) {
	var commits []history.Commit

	for _, record := range strings.Split(output, recordSep) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}
		commit, err := parseRecord(record)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}

	return commits, nil
}

func parseRecord(record string) (history.Commit, error) {
	lines := strings.Split(record, "\n")

	header := strings.Split(lines[0], fieldSep)
	if len(header) != 4 {
		return history.Commit{}, fmt.Errorf("malformed commit header: %q", lines[0])
	}

	date, err := time.Parse(time.RFC3339, header[2])
	if err != nil {
		return history.Commit{}, fmt.Errorf("commit %s: parsing date %q: %w", header[0], header[2], err)
	}

	commit := history.Commit{
		Hash:    header[0],
		Author:  header[1],
		Date:    date,
		Message: header[3],
		Files:   []history.FileChange{},
	}

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		change, err := parseNumstat(line)
		if err != nil {
			return history.Commit{}, fmt.Errorf("commit %s: %w", commit.Hash, err)
		}
		commit.Files = append(commit.Files, change)
	}

	return commit, nil
}

// parseNumstat parses one "added<TAB>deleted<TAB>path" line. numstat is
// tab-separated, so paths containing spaces survive intact. Binary
// files report "-" for both counts; they are kept with zero counts and
// the Binary flag set, so they still count as touches downstream.
func parseNumstat(line string) (history.FileChange, error) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) != 3 {
		return history.FileChange{}, fmt.Errorf("malformed numstat line: %q", line)
	}

	if fields[0] == "-" || fields[1] == "-" {
		return history.FileChange{Path: fields[2], Binary: true}, nil
	}

	added, err := strconv.Atoi(fields[0])
	if err != nil {
		return history.FileChange{}, fmt.Errorf("numstat additions %q: %w", fields[0], err)
	}
	deleted, err := strconv.Atoi(fields[1])
	if err != nil {
		return history.FileChange{}, fmt.Errorf("numstat deletions %q: %w", fields[1], err)
	}

	return history.FileChange{Path: fields[2], Added: added, Deleted: deleted}, nil
}
