package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose  bool
	siteRoot string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stile",
	Short: "A flat-file content pipeline for static sites",
	Long: `Stile compiles hand-edited content files (key-value text, JSON metadata)
into the canonical JSON documents the site renderer reads, and validates
content before publication.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&siteRoot, "root", "r", "", "Site root (defaults to the working directory)")
}

// resolveRoot returns the site root from the flag or the working directory.
func resolveRoot() string {
	if siteRoot != "" {
		return siteRoot
	}
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get working directory", err)
	}
	return wd
}
