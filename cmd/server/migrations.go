package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
)

// runMigrations executes one goose command against the configured database.
func runMigrations(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	command string,
	args ...string,
) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %s driver, configured driver is %s",
			config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	return postgres.Migrate(ctx, db, command, logger, args...)
}
