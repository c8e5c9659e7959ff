// Package main implements the entry point for the task board API server,
// which serves task CRUD with an append-only audit log over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a database migration command (up, down, status, version, redo, reset) and exit")
	migrateVersion := flag.String("migrate-to", "",
		"Target version for the up-to and down-to migration commands")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd, *migrateVersion); err != nil {
		stop()
		log.Fatalf("taskboard-api: %v", err)
	}
}

// run loads configuration and either executes a migration command or serves
// the API until ctx is cancelled.
func run(ctx context.Context, migrateCmd, migrateVersion string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		var args []string
		if migrateVersion != "" {
			args = append(args, migrateVersion)
		}
		return runMigrations(ctx, cfg, logger, migrateCmd, args...)
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
