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
	silosMinCommits int
	silosJSON       bool
)

var silosCmd = &cobra.Command{
	Use:   "silos [path|owner/repo]",
	Short: "Find files only one person has ever touched",
	Long: `Silos lists files whose entire history belongs to a single author.
Each one is a bus-factor-of-one: if that person leaves, nobody has
touched the file before.

Raise --min-commits to ignore files too small to matter.

Examples:
  gitsift silos
  gitsift silos --min-commits 5
  gitsift silos golang/go --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSilos,
}

func init() {
	silosCmd.Flags().IntVar(&silosMinCommits, "min-commits", 0, "minimum commits for a file to count (default from config)")
	silosCmd.Flags().BoolVar(&silosJSON, "json", false, "emit JSON instead of a table")
	addHistoryFlags(silosCmd)
}

func runSilos(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	commits, err := collectHistory(ctx, args)
	if err != nil {
		return err
	}

	minCommits := cfg.Analysis.SiloMinCommits
	if silosMinCommits > 0 {
		minCommits = silosMinCommits
	}
	entries := analysis.KnowledgeSilos(commits, analysis.SiloOptions{MinCommits: minCommits})

	if silosJSON {
		return printJSON(entries)
	}

	fmt.Printf("🤐 Knowledge Silos (%d commits analyzed)\n", len(commits))
	if len(entries) == 0 {
		fmt.Println("  (none)")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  FILE\tSOLE AUTHOR\tCOMMITS")
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", e.Path, e.Author, e.Commits)
	}
	return tw.Flush()
}
