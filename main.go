// Package main is the entry point for the expense tracker HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitlab.com/yelinaung/expense-tracker/internal/api"
	"gitlab.com/yelinaung/expense-tracker/internal/config"
	"gitlab.com/yelinaung/expense-tracker/internal/database"
	"gitlab.com/yelinaung/expense-tracker/internal/logger"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"gitlab.com/yelinaung/expense-tracker/internal/repository"
	"gitlab.com/yelinaung/expense-tracker/internal/service"
	"gitlab.com/yelinaung/expense-tracker/internal/telemetry"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("expense-tracker %s (commit: %s, built: %s)\n", version, commit, date)
			return
		case "adduser":
			if err := addUser(os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	logger.InitHashSalt()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to set up telemetry")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Log.Warn().Err(err).Msg("Failed to flush telemetry")
		}
	}()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	logger.Log.Info().Msg("Database initialized successfully")

	svc := service.New(
		repository.NewUserRepository(pool),
		repository.NewExpenseRepository(pool),
		service.Options{Location: cfg.Location, RecentLimit: cfg.RecentLimit},
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewServer(svc, pool, cfg.AuthHeader).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Log.Error().Err(err).Msg("HTTP server failed")
		}
	case <-ctx.Done():
		logger.Log.Info().Msg("Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}

// addUser provisions the user row for an email already known to the auth
// proxy.
func addUser(args []string) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	email := fs.String("email", "", "email forwarded by the auth proxy")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("adduser: -email is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	user := &models.User{Email: *email, Name: *name}
	if err := repository.NewUserRepository(pool).Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("adduser: %s already exists", user.Email)
		}
		return err
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
	return nil
}
