// Command server runs the schedulizer HTTP API: it loads configuration,
// applies database migrations, wires the stores and services together, and
// serves the REST surface until interrupted.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/schedulizer/schedulizer-api/internal/api"
	"github.com/schedulizer/schedulizer-api/internal/api/middleware"
	"github.com/schedulizer/schedulizer-api/internal/config"
	"github.com/schedulizer/schedulizer-api/internal/platform/logger"
	"github.com/schedulizer/schedulizer-api/internal/platform/postgres"
	"github.com/schedulizer/schedulizer-api/internal/service"
	"github.com/schedulizer/schedulizer-api/internal/service/auth"
	"github.com/schedulizer/schedulizer-api/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Error("failed to close database", slog.String("error", cerr.Error()))
		}
	}()

	if err := applyMigrations(db, log); err != nil {
		return err
	}

	// Stores
	scheduleStore := postgres.NewScheduleStore(db, log)
	userStore := postgres.NewUserStore(db, log)

	// Services
	scheduleService := service.NewScheduleService(scheduleStore)
	userService := service.NewUserService(userStore, auth.NewBcryptHasher())

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}
	authService := auth.NewService(userService, jwtService, log)

	// HTTP surface
	router := api.NewRouter(api.RouterDeps{
		Auth:      api.NewAuthHandler(authService),
		Schedules: api.NewScheduleHandler(scheduleService),
		Users:     api.NewUserHandler(userService),
		Identity:  middleware.NewIdentity(authService),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return serve(server, log)
}

// openDatabase opens the connection pool and verifies connectivity.
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// applyMigrations brings the schema up to date using the embedded goose
// migrations.
func applyMigrations(db *sql.DB, log *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Info("database schema up to date", slog.Int64("version", version))

	return nil
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests within the shutdown timeout.
func serve(server *http.Server, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
