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
	hotspotsTop  int
	hotspotsJSON bool
)

var hotspotsCmd = &cobra.Command{
	Use:   "hotspots [path|owner/repo]",
	Short: "Rank files by commit count and churn",
	Long: `Hotspots ranks files by how often they change. Files that attract many
commits and heavy churn are where defects tend to cluster.

Examples:
  gitsift hotspots
  gitsift hotspots --days 180 --top 10
  gitsift hotspots golang/go --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHotspots,
}

func init() {
	hotspotsCmd.Flags().IntVar(&hotspotsTop, "top", 0, "number of files to show (default from config)")
	hotspotsCmd.Flags().BoolVar(&hotspotsJSON, "json", false, "emit JSON instead of a table")
	addHistoryFlags(hotspotsCmd)
}

func runHotspots(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	commits, err := collectHistory(ctx, args)
	if err != nil {
		return err
	}

	top := cfg.Analysis.HotspotTop
	if hotspotsTop > 0 {
		top = hotspotsTop
	}
	entries := analysis.Hotspots(commits, analysis.HotspotOptions{Top: top})

	if hotspotsJSON {
		return printJSON(entries)
	}

	fmt.Printf("🔥 Hotspots (%d commits analyzed)\n", len(commits))
	if len(entries) == 0 {
		fmt.Println("  (none)")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  FILE\tCOMMITS\tCHURN\tADDED\tDELETED\tAUTHORS")
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%d\t%d\n",
			e.Path, e.Commits, e.Churn, e.Added, e.Deleted, e.Authors)
	}
	return tw.Flush()
}
