package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitsift/gitsift/internal/config"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile string
	verbose bool
	logger  *logrus.Logger
	cfg     *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gitsift",
	Short: "GitSift - mine commit history for engineering risk signals",
	Long: `GitSift analyzes a repository's commit history and surfaces the places
where change concentrates: hotspots, temporally coupled files, aging code,
author activity, and knowledge silos.

It reads history from a local clone or straight from the GitHub API.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logrus.New()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("Failed to load config, using defaults")
			cfg = config.Default()
		}

		level := logrus.InfoLevel
		if parsed, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
			level = parsed
		}
		if verbose {
			level = logrus.DebugLevel
		}
		logger.SetLevel(level)

		logger.WithFields(logrus.Fields{
			"run_id":  uuid.NewString(),
			"version": Version,
		}).Debug("gitsift starting")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .gitsift/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.SetVersionTemplate(`GitSift {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(hotspotsCmd)
	rootCmd.AddCommand(couplingCmd)
	rootCmd.AddCommand(ageCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(silosCmd)
	rootCmd.AddCommand(configureCmd)
}
