package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enotkrutoy/CyberSearch/internal/config"
)

var (
	// Global flags
	configPath string

	// Loaded before every command runs
	cfg config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cybersearch",
	Short: "Search vector generator for breadth-first web reconnaissance",
	Long: `cybersearch turns a search phrase into a batch of search engine URLs
("vectors"), each widened by a site-pattern clause of decaying density.
The tool builds and opens URLs; it never executes searches or parses
results itself.

Run without arguments to start the interactive panel.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPanel()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./cybersearch.yaml, then the user config dir)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(panelCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
