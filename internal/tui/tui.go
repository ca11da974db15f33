// Package tui implements the interactive terminal UI of the client: a preset
// picker and a result screen with clipboard copy, built on bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-xkpasswd/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Generator abstracts where passwords come from: the in-process engine or a
// remote server over HTTP.
type Generator interface {
	GeneratePasswords(ctx context.Context, req models.GenerateRequest) ([]models.Password, error)
	Presets(ctx context.Context) ([]models.PresetInfo, error)
}

type TUI struct {
	generator Generator
	version   string
}

func New(generator Generator, version string) *TUI {
	return &TUI{generator: generator, version: version}
}

// Run drives the interactive session until the user quits. Quitting from the
// preset screen is a normal exit, not an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.generator, t.version)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.lastErr != nil && !errors.Is(result.lastErr, ErrUserQuit) {
		return result.lastErr
	}

	return nil
}
