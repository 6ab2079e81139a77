package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/queelius/btk-graph/cmd/btk-graph/commands"
	"github.com/queelius/btk-graph/logger"
)

var rootCmd = &cobra.Command{
	Use:   "btk-graph",
	Short: "btk-graph - Bookmark similarity graph engine",
	Long: `btk-graph - Compute and render a similarity graph over a bookmark collection.

The graph scores every bookmark pair from domain, tag, and direct-link
signals, persists the edge set, and renders it in several formats.

Available commands:
  build      - Rebuild the similarity graph and save it
  neighbors  - Show the most similar bookmarks for one bookmark
  export     - Render the graph (json/svg/gexf/graphml/gml)
  db         - Database operations
  version    - Show version information

Examples:
  btk-graph build                       # Rebuild and persist the graph
  btk-graph neighbors 42 --limit 5      # Top 5 neighbors of bookmark 42
  btk-graph export svg --out graph.svg  # Render to SVG
  btk-graph export json                 # Node-link JSON on stdout`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.InitializeWithLevel(jsonLogs, logger.LevelForVerbosity(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs")
	rootCmd.PersistentFlags().String("db", "", "Database path (overrides config)")
	rootCmd.PersistentFlags().String("config", "", "Config file path")

	// Add commands
	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.NeighborsCmd)
	rootCmd.AddCommand(commands.ExportCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
