package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/focusdeck/internal/shared"
	"github.com/desertthunder/focusdeck/internal/ui"
	"github.com/urfave/cli/v3"
)

// Dash launches the interactive focus dashboard.
func (r *Runner) Dash(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfigOrDefault(cmd.String("config"))
	r.config = config

	if err := r.requireSession(); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/focusdeck-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	stateDir := config.State.Dir
	if stateDir == "" {
		stateDir = "./tmp/state"
	}

	model := ui.NewModel(ctx, r.api, fileLogger, stateDir)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
