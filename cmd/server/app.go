package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskboard-hq/taskboard-api/internal/config"
	"github.com/taskboard-hq/taskboard-api/internal/platform/logger"
	"github.com/taskboard-hq/taskboard-api/internal/platform/postgres"
	"github.com/taskboard-hq/taskboard-api/internal/service"
	"github.com/taskboard-hq/taskboard-api/internal/service/auth"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// application bundles the long-lived dependencies assembled at startup
// and injected into the router's handlers.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	userStore        store.UserStore
	boardStore       store.BoardStore
	taskStore        store.TaskStore
	boardService     service.BoardService
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication loads configuration and wires every component: logger,
// database (with migrations applied), stores, services. Dependencies flow
// top-down through constructors; nothing reaches for globals.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupDatabase(cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}
	log.Info("database migrations applied")

	jwtService, err := auth.NewJWTService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewUserStore(db, cfg.Auth.BCryptCost, log)
	boardStore := postgres.NewBoardStore(db, log)
	taskStore := postgres.NewTaskStore(db, log)
	boardService := service.NewBoardService(db, boardStore, taskStore, log)

	return &application{
		config:           cfg,
		logger:           log,
		db:               db,
		userStore:        userStore,
		boardStore:       boardStore,
		taskStore:        taskStore,
		boardService:     boardService,
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
