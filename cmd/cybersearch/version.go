package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enotkrutoy/CyberSearch/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cybersearch %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}
