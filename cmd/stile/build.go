package main

import (
	"fmt"
	"log/slog"

	"github.com/fernhollow/stile"
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile content files into the canonical JSON documents",
	Long: `Build reads the content directories (events, links, gallery metadata),
normalizes every record, and writes the canonical JSON documents under data/.
Existing documents are overwritten; the maps placeholder is seeded only once.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		summary, err := stile.Build(resolveRoot(), stile.WithLogger(slog.Default()))
		if err != nil {
			fatal("Build failed", err)
		}

		fmt.Printf("Built %d events, %d links, %d gallery items.\n",
			summary.Events, summary.Links, summary.Gallery)
		if summary.SeededMaps {
			fmt.Println("Seeded placeholder maps document.")
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
