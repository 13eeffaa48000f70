package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/focusdeck/internal/client"
	"github.com/desertthunder/focusdeck/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthRegister creates an account on the API server.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	email := cmd.String("email")
	password := cmd.String("password")

	if err := r.api.Register(ctx, username, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	r.logger.Info("account created", "username", username)
	return r.writePlain("✓ Account created, run 'focusdeck auth login' to sign in\n")
}

// AuthLogin authenticates and persists the resulting session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	session, err := r.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := client.SaveSession(r.sessionPath(), session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	r.logger.Info("logged in", "username", session.Username)
	return r.writePlain("✓ Logged in as %s\n", session.Username)
}

// AuthLogout discards the persisted session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := client.ClearSession(r.sessionPath()); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return r.writePlain("✓ Logged out\n")
}

// AuthWhoami shows the identity attached to the persisted session.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	session, err := client.LoadSession(r.sessionPath())
	if err != nil {
		return fmt.Errorf("%w: no session", shared.ErrNotAuthenticated)
	}

	if !session.Valid() {
		return fmt.Errorf("%w: session expired at %s", shared.ErrNotAuthenticated, session.ExpiresAt.Format("2006-01-02 15:04"))
	}

	r.writePlain("Logged in as %s (user %d)\n", session.Username, session.UserID)
	return r.writePlain("Session expires %s\n", session.ExpiresAt.Format("2006-01-02 15:04"))
}
