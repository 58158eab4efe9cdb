package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitsift/gitsift/internal/analysis"
)

var ageJSON bool

var ageCmd = &cobra.Command{
	Use:   "age [path|owner/repo]",
	Short: "Bucket files by time since their last change",
	Long: `Age groups every file by how long ago it last changed: fresh (a week),
recent (a month), aging (a quarter), stale (a year), ancient (older).
It also lists the oldest and freshest files individually.

Examples:
  gitsift age
  gitsift age golang/go --max-commits 1000
  gitsift age --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAge,
}

func init() {
	ageCmd.Flags().BoolVar(&ageJSON, "json", false, "emit JSON instead of a table")
	addHistoryFlags(ageCmd)
}

func runAge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	commits, err := collectHistory(ctx, args)
	if err != nil {
		return err
	}

	report := analysis.CodeAge(commits, time.Now())

	if ageJSON {
		return printJSON(report)
	}

	fmt.Printf("📅 Code Age (%d commits analyzed)\n", len(commits))
	if report.TotalFiles == 0 {
		fmt.Println("  (none)")
		return nil
	}

	b := report.Buckets
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  fresh (0-7d)\t%d\n", b.Fresh)
	fmt.Fprintf(tw, "  recent (8-30d)\t%d\n", b.Recent)
	fmt.Fprintf(tw, "  aging (31-90d)\t%d\n", b.Aging)
	fmt.Fprintf(tw, "  stale (91-365d)\t%d\n", b.Stale)
	fmt.Fprintf(tw, "  ancient (>365d)\t%d\n", b.Ancient)
	fmt.Fprintf(tw, "  total files\t%d\n", report.TotalFiles)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Oldest) > 0 {
		fmt.Println("\n  Oldest:")
		tw = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, f := range report.Oldest {
			fmt.Fprintf(tw, "    %s\t%dd\tlast change %s\n",
				f.Path, f.AgeDays, f.LastModified.Format("2006-01-02"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(report.Freshest) > 0 {
		fmt.Println("\n  Freshest:")
		tw = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, f := range report.Freshest {
			fmt.Fprintf(tw, "    %s\t%dd\tlast change %s\n",
				f.Path, f.AgeDays, f.LastModified.Format("2006-01-02"))
		}
		return tw.Flush()
	}
	return nil
}
