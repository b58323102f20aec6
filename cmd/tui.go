package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lunamoth/spx/internal/models"
	"github.com/lunamoth/spx/internal/shared"
	"github.com/lunamoth/spx/internal/ui"
	"github.com/urfave/cli/v3"
)

// runnerLibrary adapts the Runner's playlist helpers to [ui.Library].
type runnerLibrary struct {
	runner *Runner
}

func (l *runnerLibrary) Playlists(ctx context.Context) ([]models.Playlist, error) {
	return l.runner.fetchAllPlaylists(ctx)
}

func (l *runnerLibrary) ExportPlaylist(ctx context.Context, id string) (*models.PlaylistExport, error) {
	return l.runner.exportPlaylist(ctx, id)
}

// TUI launches the interactive playlist browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureToken(); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := filepath.Join(os.TempDir(), "spx-tui.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	r.SetLogger(shared.NewLogger(logFile))

	model := ui.NewModel(ctx, &runnerLibrary{runner: r})
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
