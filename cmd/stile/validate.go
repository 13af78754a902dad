package main

import (
	"log/slog"
	"os"

	"github.com/fernhollow/stile"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check content files for structural problems",
	Long: `Validate re-reads every content file and reports errors (content that
would break rendering: bad dates, missing URLs, duplicate ids) and warnings
(content that degrades the site: missing titles or descriptions).

The command exits non-zero if any error is found; warnings alone pass.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root := resolveRoot()

		report, err := stile.Validate(root, stile.WithLogger(slog.Default()))
		if err != nil {
			fatal("Validation failed", err)
		}

		report.Print(os.Stdout, report.Cap)

		if !report.OK() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
