package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/platform/metrics"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory driver is configured.
	db *sql.DB

	taskStore  store.TaskStore
	auditStore store.AuditLogStore

	taskService   service.TaskService
	auditService  service.AuditLogService
	authenticator auth.Authenticator

	eventEmitter *events.InMemoryEventEmitter
	metrics      *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies initialized.
// For the postgres driver it opens the pool and, when configured, applies
// pending migrations.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	if err := app.setupStores(ctx); err != nil {
		return nil, err
	}

	var err error
	app.authenticator, err = auth.NewBasicAuthenticator(cfg.Auth, auth.NewBcryptVerifier(), logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(app.metrics)

	app.auditService, err = service.NewAuditLogService(app.auditStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create audit log service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, app.auditService, app.eventEmitter, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully", "database_driver", cfg.Database.Driver)
	return app, nil
}

// setupStores builds the task and audit stores for the configured driver.
func (app *application) setupStores(ctx context.Context) error {
	switch app.config.Database.Driver {
	case config.DriverMemory:
		app.taskStore = memory.NewTaskStore()
		app.auditStore = memory.NewAuditLogStore()
		app.logger.Warn("Using in-memory storage; data is lost on restart")
		return nil

	case config.DriverPostgres:
		db, err := setupAppDatabase(ctx, app.config.Database, app.logger)
		if err != nil {
			return err
		}
		app.db = db

		if app.config.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db, "up", app.logger); err != nil {
				app.cleanup()
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
		}

		app.taskStore = postgres.NewPostgresTaskStore(db, app.logger)
		app.auditStore = postgres.NewPostgresAuditLogStore(db, app.logger)
		return nil

	default:
		return fmt.Errorf("unsupported database driver %q", app.config.Database.Driver)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns once ctx is cancelled and the server has shut down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("Application shutdown completed")
}
