package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/focusdeck/internal/auth"
	"github.com/desertthunder/focusdeck/internal/server"
	"github.com/desertthunder/focusdeck/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the dashboard API server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfigOrDefault(cmd.String("config"))

	if config.Auth.Secret == "" {
		return fmt.Errorf("%w: auth.secret must be set", shared.ErrMissingConfig)
	}

	port := config.Server.Port
	if override := cmd.Int("port"); override != 0 {
		port = int(override)
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ttl := auth.DefaultTokenTTL
	if config.Auth.TokenTTLHours > 0 {
		ttl = time.Duration(config.Auth.TokenTTLHours) * time.Hour
	}
	issuer := auth.NewTokenIssuer(config.Auth.Secret, ttl)

	router := server.NewAPI(db, issuer, r.logger)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	r.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
