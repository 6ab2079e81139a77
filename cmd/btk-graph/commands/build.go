package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/graph"
	"github.com/queelius/btk-graph/logger"
	"github.com/queelius/btk-graph/sym"
)

var (
	buildMinWeight float64
	buildNoSave    bool
	buildQuiet     bool
)

// BuildCmd represents the build command
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: sym.Graph + " Rebuild the similarity graph",
	Long: sym.Graph + ` build — Rebuild the similarity graph

Scores every unordered bookmark pair from domain, tag, and direct-link
signals, keeps edges meeting the minimum weight, and saves the result.
The rebuild is complete, not incremental: pairwise comparison is O(n²)
in the collection size.

Examples:
  btk-graph build                     # Rebuild with configured weights
  btk-graph build --min-weight 0.5    # Higher edge threshold
  btk-graph build --no-save           # Compute stats without persisting`,
	RunE: runBuildCommand,
}

func init() {
	BuildCmd.Flags().Float64Var(&buildMinWeight, "min-weight", 0, "Minimum edge weight (overrides config when set)")
	BuildCmd.Flags().BoolVar(&buildNoSave, "no-save", false, "Skip persisting the edge set")
	BuildCmd.Flags().BoolVarP(&buildQuiet, "quiet", "q", false, "Suppress the progress line")
}

func runBuildCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	graphConfig := cfg.GraphConfig()
	if cmd.Flags().Changed("min-weight") {
		graphConfig.MinEdgeWeight = buildMinWeight
	}

	database, err := openDatabase(cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	store := bookmarks.NewSQLStore(database, logger.Logger)
	g := graph.New(store, database, graphConfig, logger.Logger)

	var progress graph.ProgressFunc
	if !buildQuiet {
		progress = func(done, total, edges int) {
			if total == 0 {
				return
			}
			fmt.Printf("\r%s Comparing pairs: %d/%d (%d edges)", sym.Graph, done, total, edges)
			if done == total {
				fmt.Println()
			}
		}
	}

	stats, err := g.Build(context.Background(), progress)
	if err != nil {
		return errors.Wrap(err, "failed to build graph")
	}

	if !buildNoSave {
		if err := g.Save(context.Background()); err != nil {
			return errors.Wrap(err, "failed to save graph")
		}
	}

	fmt.Printf("%s Graph built\n\n", sym.Graph)
	fmt.Printf("Bookmarks:       %d\n", stats.TotalBookmarks)
	fmt.Printf("Edges:           %d\n", stats.TotalEdges)
	fmt.Printf("Avg edge weight: %.3f\n", stats.AvgEdgeWeight)
	fmt.Printf("Max edge weight: %.3f\n", stats.MaxEdgeWeight)
	fmt.Printf("Components:      domain=%d tag=%d direct_link=%d\n",
		stats.ComponentCounts["domain"],
		stats.ComponentCounts["tag"],
		stats.ComponentCounts["direct_link"],
	)
	return nil
}
