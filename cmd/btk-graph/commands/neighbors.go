package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/queelius/btk-graph/bookmarks"
	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/graph"
	"github.com/queelius/btk-graph/logger"
	"github.com/queelius/btk-graph/sym"
)

var (
	neighborsMinWeight float64
	neighborsLimit     int
	neighborsFormat    string
)

// NeighborsCmd represents the neighbors command
var NeighborsCmd = &cobra.Command{
	Use:   "neighbors <bookmark-id>",
	Short: sym.Graph + " Show the most similar bookmarks",
	Long: sym.Graph + ` neighbors — Show the most similar bookmarks

Loads the persisted graph and lists the bookmarks adjacent to the given
one, strongest first.

Examples:
  btk-graph neighbors 42                  # Top 10 neighbors of bookmark 42
  btk-graph neighbors 42 --limit 5        # Top 5
  btk-graph neighbors 42 --min-weight 1   # Only strong edges
  btk-graph neighbors 42 --format json    # Machine-readable output`,
	Args: cobra.ExactArgs(1),
	RunE: runNeighborsCommand,
}

func init() {
	NeighborsCmd.Flags().Float64Var(&neighborsMinWeight, "min-weight", 0, "Minimum edge weight")
	NeighborsCmd.Flags().IntVarP(&neighborsLimit, "limit", "l", graph.DefaultNeighborLimit, "Maximum number of results")
	NeighborsCmd.Flags().StringVarP(&neighborsFormat, "format", "f", "table", "Output format (table/json)")
}

func runNeighborsCommand(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid bookmark id %q", args[0])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	database, err := openDatabase(cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	store := bookmarks.NewSQLStore(database, logger.Logger)
	g := graph.New(store, database, cfg.GraphConfig(), logger.Logger)
	if err := g.Load(ctx); err != nil {
		return err
	}

	neighbors := g.Neighbors(id, neighborsMinWeight, neighborsLimit)

	if neighborsFormat == "json" {
		out, err := json.MarshalIndent(neighbors, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal neighbors")
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%s %d neighbors of bookmark %d\n\n", sym.Graph, len(neighbors), id)
	for _, n := range neighbors {
		title := fmt.Sprintf("bookmark %d", n.BookmarkID)
		if b, err := store.Get(ctx, n.BookmarkID); err == nil {
			if b.Title != "" {
				title = b.Title
			} else {
				title = b.URL
			}
		}
		fmt.Printf("%8.3f  %s\n", n.Weight, title)
		fmt.Printf("          domain=%.3f tag=%.3f direct_link=%.3f\n",
			n.Components.Domain, n.Components.Tag, n.Components.DirectLink)
	}
	return nil
}
