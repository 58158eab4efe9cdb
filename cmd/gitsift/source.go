package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitsift/gitsift/internal/analysis"
	"github.com/gitsift/gitsift/internal/cache"
	"github.com/gitsift/gitsift/internal/config"
	"github.com/gitsift/gitsift/internal/git"
	"github.com/gitsift/gitsift/internal/github"
	"github.com/gitsift/gitsift/internal/history"
)

// History-window flags shared by every analysis command. Only one
// command runs per invocation, so the variables can be shared.
var (
	daysFlag       int
	maxCommitsFlag int
	noCacheFlag    bool
)

func addHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&daysFlag, "days", 0, "only analyze commits from the last N days (0 = full history)")
	cmd.Flags().IntVar(&maxCommitsFlag, "max-commits", 0, "cap the number of commits analyzed (0 = no cap)")
	cmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "bypass the history cache")
}

// resolveSource classifies the target argument. An owner/repo slug that
// is not a local directory goes to the GitHub API; everything else is
// treated as a local repository path. No argument means the current
// directory.
func resolveSource(args []string) (source, target string) {
	target = "."
	if len(args) > 0 {
		target = args[0]
	}

	switch cfg.Source {
	case "local":
		return "local", target
	case "github":
		return "github", target
	}

	if looksLikeRepoSlug(target) && !dirExists(target) {
		return "github", target
	}
	return "local", target
}

func looksLikeRepoSlug(arg string) bool {
	parts := strings.Split(arg, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	// Path-ish arguments are never slugs.
	if strings.HasPrefix(arg, ".") || strings.HasPrefix(arg, "/") || strings.HasPrefix(arg, "~") {
		return false
	}
	return true
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func historyWindow() (days, maxCommits int) {
	days = cfg.History.Days
	if daysFlag > 0 {
		days = daysFlag
	}
	maxCommits = cfg.History.MaxCommits
	if maxCommitsFlag > 0 {
		maxCommits = maxCommitsFlag
	}
	return days, maxCommits
}

// collectHistory fetches the commit history for the target named in
// args, consulting the cache first when enabled.
func collectHistory(ctx context.Context, args []string) ([]history.Commit, error) {
	source, target := resolveSource(args)
	days, maxCommits := historyWindow()

	var store *cache.Store
	if cfg.Cache.Enabled && !noCacheFlag {
		var err error
		store, err = cache.Open(cfg.Cache.Path, cfg.Cache.TTL, logger)
		if err != nil {
			logger.WithError(err).Warn("Cache unavailable, fetching directly")
			store = nil
		} else {
			defer store.Close()
		}
	}

	if source == "github" {
		return collectGitHubHistory(ctx, store, target, days, maxCommits)
	}
	return collectLocalHistory(ctx, store, target, days, maxCommits)
}

func collectLocalHistory(ctx context.Context, store *cache.Store, target string, days, maxCommits int) ([]history.Commit, error) {
	root, err := git.Root(ctx, target)
	if err != nil {
		return nil, err
	}
	runner := git.NewRunner(root, logger)

	var key string
	if store != nil {
		if head, err := runner.Head(ctx); err == nil {
			key = cache.Key("local", root, head, days, maxCommits)
			if commits, ok := store.Get(key); ok {
				logger.WithField("commits", len(commits)).Debug("history served from cache")
				return commits, nil
			}
		}
	}

	commits, err := runner.Log(ctx, git.LogOptions{Days: days, MaxCommits: maxCommits})
	if err != nil {
		return nil, err
	}

	if store != nil && key != "" {
		if err := store.Put(key, commits); err != nil {
			logger.WithError(err).Debug("failed to cache history")
		}
	}
	return commits, nil
}

func collectGitHubHistory(ctx context.Context, store *cache.Store, target string, days, maxCommits int) ([]history.Commit, error) {
	owner, name, err := github.SplitRepo(target)
	if err != nil {
		return nil, err
	}

	token := cfg.GitHub.Token
	if token == "" {
		cm := config.NewCredentialManager()
		if token, err = cm.GetGitHubToken(); err != nil {
			return nil, err
		}
	}

	// The remote HEAD is unknown without an extra API call, so remote
	// entries are keyed by window alone and rely on the TTL.
	var key string
	if store != nil {
		key = cache.Key("github", target, "", days, maxCommits)
		if commits, ok := store.Get(key); ok {
			logger.WithField("commits", len(commits)).Debug("history served from cache")
			return commits, nil
		}
	}

	client := github.NewClient(token, cfg.GitHub.RateLimit, logger)
	commits, err := client.FetchHistory(ctx, owner, name, days, maxCommits)
	if err != nil {
		return nil, err
	}

	if store != nil {
		if err := store.Put(key, commits); err != nil {
			logger.WithError(err).Debug("failed to cache history")
		}
	}
	return commits, nil
}

// analysisOptions maps the config tunables onto analyzer options.
func analysisOptions() analysis.Options {
	return analysis.Options{
		Hotspots: analysis.HotspotOptions{Top: cfg.Analysis.HotspotTop},
		Coupling: analysis.CouplingOptions{
			Top:               cfg.Analysis.CouplingTop,
			MinCommits:        cfg.Analysis.CouplingMinCommits,
			MaxFilesPerCommit: cfg.Analysis.MaxFilesPerCommit,
		},
		Authors: analysis.AuthorOptions{Top: cfg.Analysis.AuthorTop},
		Silos:   analysis.SiloOptions{MinCommits: cfg.Analysis.SiloMinCommits},
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
