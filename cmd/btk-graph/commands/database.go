package commands

import (
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/queelius/btk-graph/am"
	"github.com/queelius/btk-graph/db"
	"github.com/queelius/btk-graph/errors"
	"github.com/queelius/btk-graph/logger"
)

// loadConfig resolves the configuration, honoring the global --config flag.
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return am.LoadFromFile(path)
	}
	return am.Load()
}

// openDatabase opens and migrates the database. The global --db flag wins
// over the configured path.
func openDatabase(cmd *cobra.Command, cfg *am.Config) (*sql.DB, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}

	database, err := db.Open(dbPath, logger.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %s", dbPath)
	}

	if err := db.Migrate(database, logger.Logger); err != nil {
		database.Close()
		return nil, errors.Wrapf(err, "failed to run migrations on %s", dbPath)
	}

	return database, nil
}
