package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gitsift/gitsift/internal/history"
)

// Runner executes git against a local repository and parses its output
// into commit history. All time bounds on the analysis window are
// applied here, before the analyzers ever see the data.
type Runner struct {
	repoPath string
	logger   *logrus.Logger
}

// NewRunner creates a runner rooted at repoPath.
func NewRunner(repoPath string, logger *logrus.Logger) *Runner {
	return &Runner{repoPath: repoPath, logger: logger}
}

// LogOptions narrow the history window handed to the analyzers.
type LogOptions struct {
	Days       int    // --since window in days; 0 means full history
	MaxCommits int    // --max-count; 0 means unlimited
	Path       string // restrict history to one path; empty means whole tree
}

// Log runs git log --numstat over the requested window and returns the
// parsed commits, newest first (git's native order).
func (r *Runner) Log(ctx context.Context, opts LogOptions) ([]history.Commit, error) {
	args := []string{
		"log",
		"--numstat",
		"--date=iso-strict",
		"--pretty=format:" + prettyFormat,
	}
	if opts.Days > 0 {
		args = append(args, fmt.Sprintf("--since=%d days ago", opts.Days))
	}
	if opts.MaxCommits > 0 {
		args = append(args, fmt.Sprintf("--max-count=%d", opts.MaxCommits))
	}
	if opts.Path != "" {
		args = append(args, "--", opts.Path)
	}

	output, err := r.run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}

	commits, err := ParseLog(output)
	if err != nil {
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"repo":    r.repoPath,
		"commits": len(commits),
		"days":    opts.Days,
	}).Debug("git history collected")

	return commits, nil
}

// Head returns the commit hash HEAD points at. It feeds the history
// cache key, so any new commit naturally invalidates cached history.
func (r *Runner) Head(ctx context.Context) (string, error) {
	output, err := r.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse HEAD: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// Root resolves the top-level directory of the repository containing
// path, or an error when path is not inside a work tree.
func Root(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = path
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not a git repository: %s", path)
	}
	return strings.TrimSpace(string(output)), nil
}

func (r *Runner) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.repoPath

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(output), nil
}
