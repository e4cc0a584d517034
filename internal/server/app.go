// Package server wires the remote store: database, migrations, object
// storage, services and the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/locagri/internal/logging"
	"github.com/dmitrijs2005/locagri/internal/server/config"
	"github.com/dmitrijs2005/locagri/internal/server/query"
	"github.com/dmitrijs2005/locagri/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/locagri/internal/server/services"
	"github.com/dmitrijs2005/locagri/internal/server/storage"

	gs "github.com/dmitrijs2005/locagri/internal/server/grpc"
)

var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: repomanager.NewPostgresRepositoryManager(),
	}, nil
}

// Close releases the database handle.
func (app *App) Close() error {
	return app.db.Close()
}

// Migrate applies pending schema migrations.
func (app *App) Migrate(ctx context.Context) error {
	app.logger.Info(ctx, "Running migrations...")
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run migrates the schema and serves gRPC until a termination signal
// arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	if err := app.Migrate(ctx); err != nil {
		return err
	}

	store, err := storage.NewS3Store(ctx, storage.Options{
		Region:    app.config.S3Region,
		AccessKey: app.config.S3RootUser,
		SecretKey: app.config.S3RootPassword,
		Endpoint:  app.config.S3BaseEndpoint,
	})
	if err != nil {
		return err
	}

	authService := services.NewAuthService(app.db, app.repomanager, app.config)
	queryService := services.NewQueryService(app.db, app.repomanager, query.DefaultCatalog())
	storageService := services.NewStorageService(store, app.config)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, authService, queryService, storageService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server stopped", "error", err)
		return err
	}
	return nil
}
