package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/gitsift/gitsift/internal/analysis"
	"github.com/gitsift/gitsift/internal/render"
)

var (
	analyzeFormat string
	analyzeTop    int
	analyzeOut    string
	analyzeOpen   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path|owner/repo]",
	Short: "Run all five history analyses and render a combined report",
	Long: `Analyze mines the commit history and reports hotspots, temporal
coupling, code age, author activity, and knowledge silos in one pass.

The target may be a local repository path (default ".") or an
owner/repo slug, which is fetched through the GitHub API.

Examples:
  gitsift analyze
  gitsift analyze ~/src/payments --days 365
  gitsift analyze golang/go --max-commits 500 --format markdown
  gitsift analyze --format mermaid --out coupling.mmd --open`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "output format: text, markdown, mermaid, json, yaml (default from config)")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "override the per-section result cap")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeOpen, "open", false, "open the written report (requires --out)")
	addHistoryFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeOpen && analyzeOut == "" {
		return fmt.Errorf("--open requires --out")
	}

	ctx := context.Background()

	commits, err := collectHistory(ctx, args)
	if err != nil {
		return err
	}

	opts := analysisOptions()
	if analyzeTop > 0 {
		opts.Hotspots.Top = analyzeTop
		opts.Coupling.Top = analyzeTop
		opts.Authors.Top = analyzeTop
	}

	report := analysis.AnalyzeAll(commits, opts)

	format := render.Format(analyzeFormat)
	if analyzeFormat == "" {
		format = render.Format(cfg.Output.Format)
	}
	renderer, err := render.New(format)
	if err != nil {
		return err
	}

	if analyzeOut == "" {
		return renderer.Render(report, os.Stdout)
	}

	f, err := os.Create(analyzeOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", analyzeOut, err)
	}
	if err := renderer.Render(report, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", analyzeOut)
	if analyzeOpen {
		if err := browser.OpenFile(analyzeOut); err != nil {
			logger.WithError(err).Warn("Failed to open report")
		}
	}
	return nil
}
