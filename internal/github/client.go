package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/gitsift/gitsift/internal/history"
)

// Client fetches commit history from the GitHub API, for analyzing
// repositories that are not cloned locally.
type Client struct {
	client      *github.Client
	rateLimiter *rate.Limiter
	maxWorkers  int
	logger      *logrus.Logger
}

// NewClient creates a GitHub-backed history source. The token may be
// empty for public repositories, at the cost of a much lower API quota.
func NewClient(token string, rateLimit int, logger *logrus.Logger) *Client {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if rateLimit <= 0 {
		rateLimit = 10
	}

	return &Client{
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), 1),
		maxWorkers:  10,
		logger:      logger,
	}
}

// SplitRepo splits an "owner/name" argument.
func SplitRepo(arg string) (owner, name string, err error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected owner/repo, got %q", arg)
	}
	return parts[0], parts[1], nil
}

// FetchHistory lists commits newest first and fills in per-file change
// stats with one detail request per commit, fanned out over a bounded
// worker pool. Results are written back by index, so the API's
// newest-first order survives the fan-out.
func (c *Client) FetchHistory(ctx context.Context, owner, name string, days, maxCommits int) ([]history.Commit, error) {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	if days > 0 {
		opts.Since = time.Now().AddDate(0, 0, -days)
	}

	var shas []string
	for {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		commits, resp, err := c.client.Repositories.ListCommits(ctx, owner, name, opts)
		if err != nil {
			return nil, fmt.Errorf("list commits for %s/%s: %w", owner, name, err)
		}
		for _, commit := range commits {
			shas = append(shas, commit.GetSHA())
		}

		if resp.NextPage == 0 || (maxCommits > 0 && len(shas) >= maxCommits) {
			break
		}
		opts.Page = resp.NextPage
	}
	if maxCommits > 0 && len(shas) > maxCommits {
		shas = shas[:maxCommits]
	}

	c.logger.WithFields(logrus.Fields{
		"repo":    owner + "/" + name,
		"commits": len(shas),
	}).Debug("commit list fetched, loading file stats")

	result := make([]history.Commit, len(shas))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxWorkers)
	for i, sha := range shas {
		i, sha := i, sha // per-iteration copies; the go directive predates Go 1.22 semantics
		g.Go(func() error {
			commit, err := c.fetchCommit(gctx, owner, name, sha)
			if err != nil {
				return err
			}
			result[i] = commit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) fetchCommit(ctx context.Context, owner, name, sha string) (history.Commit, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return history.Commit{}, fmt.Errorf("rate limiter: %w", err)
	}

	detail, _, err := c.client.Repositories.GetCommit(ctx, owner, name, sha, nil)
	if err != nil {
		return history.Commit{}, fmt.Errorf("get commit %s: %w", sha, err)
	}

	return convertCommit(detail), nil
}

// convertCommit maps an API commit onto the analyzer input model. The
// API reports numeric per-file counts for every file, so Binary stays
// false on this path.
func convertCommit(detail *github.RepositoryCommit) history.Commit {
	commit := history.Commit{
		Hash:    detail.GetSHA(),
		Author:  detail.GetCommit().GetAuthor().GetName(),
		Date:    detail.GetCommit().GetAuthor().GetDate().Time,
		Message: firstLine(detail.GetCommit().GetMessage()),
		Files:   make([]history.FileChange, 0, len(detail.Files)),
	}

	for _, file := range detail.Files {
		commit.Files = append(commit.Files, history.FileChange{
			Path:    file.GetFilename(),
			Added:   file.GetAdditions(),
			Deleted: file.GetDeletions(),
		})
	}

	return commit
}

// firstLine reduces a full commit message to its subject, matching what
// git log's %s placeholder produces on the local path.
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return strings.TrimRight(message[:idx], "\r")
	}
	return message
}
