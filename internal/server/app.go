// Package server initializes and runs the store server: it wires the
// sessions service to its backend (PostgreSQL or in-memory), starts the
// gRPC endpoint and the operator HTTP API, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/server/admin"
	"github.com/dkravets/geoseek/internal/server/archive"
	"github.com/dkravets/geoseek/internal/server/config"
	"github.com/dkravets/geoseek/internal/server/sessions"

	gs "github.com/dkravets/geoseek/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	sessions *sessions.Service
	db       *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var svc *sessions.Service
	var db *sql.DB

	if cfg.DatabaseDSN != "" {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := sessions.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
		svc = sessions.NewPostgresService(db, logger)
	} else {
		svc = sessions.NewService(sessions.NewInMemoryRepository(), logger)
	}

	if cfg.S3Bucket != "" {
		svc.SetArchiver(archive.NewS3Archiver(archive.Options{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Bucket:       cfg.S3Bucket,
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
		}, logger))
	}

	return &App{config: cfg, logger: logger, sessions: svc, db: db}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessions,
		app.config.SecretKey, app.config.AccessTokenValidityDuration)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startAdminServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := admin.NewServer(app.config.EndpointAddrAdmin, app.config.AdminToken, app.sessions, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startAdminServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}
}
