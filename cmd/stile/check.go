package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fernhollow/stile"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that committed output matches a fresh rebuild",
	Long: `Check rebuilds the generated documents in memory and compares them with
what is committed under data/. A mismatch means sources changed without a
rebuild, or generated output was edited by hand.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stale, err := stile.CheckDrift(resolveRoot(), stile.WithLogger(slog.Default()))
		if err != nil {
			fatal("Drift check failed", err)
		}

		if len(stale) == 0 {
			fmt.Println("Generated output is up to date.")
			return
		}

		fmt.Fprintln(os.Stderr, "Generated output is stale. Run 'stile build' and commit:")
		for _, path := range stale {
			fmt.Fprintf(os.Stderr, "  %s\n", path)
		}
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
