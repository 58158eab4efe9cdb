package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gitsift/gitsift/internal/analysis"
)

var (
	couplingTop        int
	couplingMinCommits int
	couplingMaxFiles   int
	couplingJSON       bool
)

var couplingCmd = &cobra.Command{
	Use:   "coupling [path|owner/repo]",
	Short: "Find file pairs that keep changing in the same commits",
	Long: `Coupling finds pairs of files that are repeatedly modified together.
A high coupling degree means touching one file almost always means
touching the other, whether or not the code links them.

Commits touching more than --max-files distinct files (bulk renames,
formatting sweeps) are skipped as noise.

Examples:
  gitsift coupling
  gitsift coupling --min-commits 5
  gitsift coupling golang/go --days 365 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCoupling,
}

func init() {
	couplingCmd.Flags().IntVar(&couplingTop, "top", 0, "number of pairs to show (default from config)")
	couplingCmd.Flags().IntVar(&couplingMinCommits, "min-commits", 0, "minimum shared commits for a pair to count (default from config)")
	couplingCmd.Flags().IntVar(&couplingMaxFiles, "max-files", 0, "skip commits touching more than this many files (default from config)")
	couplingCmd.Flags().BoolVar(&couplingJSON, "json", false, "emit JSON instead of a table")
	addHistoryFlags(couplingCmd)
}

func runCoupling(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	commits, err := collectHistory(ctx, args)
	if err != nil {
		return err
	}

	opts := analysis.CouplingOptions{
		Top:               cfg.Analysis.CouplingTop,
		MinCommits:        cfg.Analysis.CouplingMinCommits,
		MaxFilesPerCommit: cfg.Analysis.MaxFilesPerCommit,
	}
	if couplingTop > 0 {
		opts.Top = couplingTop
	}
	if couplingMinCommits > 0 {
		opts.MinCommits = couplingMinCommits
	}
	if couplingMaxFiles > 0 {
		opts.MaxFilesPerCommit = couplingMaxFiles
	}
	pairs := analysis.Coupling(commits, opts)

	if couplingJSON {
		return printJSON(pairs)
	}

	fmt.Printf("🔗 Temporal Coupling (%d commits analyzed)\n", len(commits))
	if len(pairs) == 0 {
		fmt.Println("  (none)")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  FILE A\tFILE B\tTOGETHER\tDEGREE")
	for _, p := range pairs {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%.2f\n", p.FileA, p.FileB, p.Coupled, p.Degree)
	}
	return tw.Flush()
}
