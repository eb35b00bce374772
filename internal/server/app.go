// Package server initializes and runs the users API server. It wires the
// configuration, the PostgreSQL repository manager and the HTTP endpoint,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/config"
	"github.com/dmitrijs2005/usersvc/internal/server/httpapi"
	"github.com/dmitrijs2005/usersvc/internal/server/shared/db"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	server  *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	if missing := cfg.MissingDatabaseVars(); len(missing) > 0 {
		return nil, fmt.Errorf("incomplete database configuration, missing: %s",
			strings.Join(missing, ", "))
	}

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN(), logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	handler := httpapi.NewHandler(manager.Users(), cfg, logger)
	server := httpapi.NewServer(cfg, handler, logger)

	return &App{config: cfg, logger: logger, manager: manager, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if !app.manager.SchemaReady(ctx) {
		app.logger.Error(ctx, "database schema is not ready")
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
