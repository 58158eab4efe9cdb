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
	authorsTop  int
	authorsJSON bool
)

var authorsCmd = &cobra.Command{
	Use:   "authors [path|owner/repo]",
	Short: "Rank contributors by commit count",
	Long: `Authors ranks contributors by number of commits, with their line and
file footprints alongside. Authors are identified by the exact name
string recorded in the history; no identity merging is attempted.

Examples:
  gitsift authors
  gitsift authors --days 90 --top 5
  gitsift authors golang/go --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuthors,
}

func init() {
	authorsCmd.Flags().IntVar(&authorsTop, "top", 0, "number of authors to show (default from config)")
	authorsCmd.Flags().BoolVar(&authorsJSON, "json", false, "emit JSON instead of a table")
	addHistoryFlags(authorsCmd)
}

func runAuthors(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	commits, err := collectHistory(ctx, args)
	if err != nil {
		return err
	}

	top := cfg.Analysis.AuthorTop
	if authorsTop > 0 {
		top = authorsTop
	}
	entries := analysis.Authors(commits, analysis.AuthorOptions{Top: top})

	if authorsJSON {
		return printJSON(entries)
	}

	fmt.Printf("👥 Authors (%d commits analyzed)\n", len(commits))
	if len(entries) == 0 {
		fmt.Println("  (none)")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  AUTHOR\tCOMMITS\tADDED\tDELETED\tFILES")
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%d\n",
			e.Name, e.Commits, e.Added, e.Deleted, e.FilesChanged)
	}
	return tw.Flush()
}
