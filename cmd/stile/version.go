package main

import (
	"fmt"
	"strings"

	"github.com/fernhollow/stile"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stile",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stile version %s\n", strings.TrimSpace(stile.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
