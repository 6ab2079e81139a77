package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/sym"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: sym.DB + " Manage the btk-graph database",
	Long: sym.DB + ` db — Manage the btk-graph database

Examples:
  btk-graph db migrate   # Apply pending schema migrations
  btk-graph db stats     # Show collection and graph statistics`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runDbMigrate,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection and graph statistics",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbMigrateCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	// openDatabase migrates as a side effect
	database, err := openDatabase(cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	fmt.Printf("%s Migrations applied\n", sym.DB)
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	database, err := openDatabase(cmd, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	var totalBookmarks, totalTags, withContent int
	if err := database.QueryRow("SELECT COUNT(*) FROM bookmarks").Scan(&totalBookmarks); err != nil {
		return errors.Wrap(err, "failed to count bookmarks")
	}
	if err := database.QueryRow("SELECT COUNT(DISTINCT tag) FROM bookmark_tags").Scan(&totalTags); err != nil {
		return errors.Wrap(err, "failed to count tags")
	}
	if err := database.QueryRow("SELECT COUNT(*) FROM bookmark_content").Scan(&withContent); err != nil {
		return errors.Wrap(err, "failed to count cached content")
	}

	// The graph table only exists after the first saved build
	totalEdges := -1
	if err := database.QueryRow("SELECT COUNT(*) FROM bookmark_graph").Scan(&totalEdges); err != nil {
		totalEdges = -1
	}

	fmt.Printf("%s Database Statistics\n\n", sym.DB)
	fmt.Printf("Database Path:   %s\n", cfg.Database.Path)
	fmt.Printf("Bookmarks:       %d\n", totalBookmarks)
	fmt.Printf("Distinct tags:   %d\n", totalTags)
	fmt.Printf("Cached content:  %d\n", withContent)
	if totalEdges >= 0 {
		fmt.Printf("Graph edges:     %d\n", totalEdges)
	} else {
		fmt.Printf("Graph edges:     (not built, run 'btk-graph build')\n")
	}
	return nil
}
