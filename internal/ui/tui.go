// Package ui provides the interactive terminal dashboard.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nibzard/pydo/internal/command"
)

// RunTUI runs the dashboard until the user quits or ctx is cancelled.
// A load or save failure stops the dashboard and is returned.
func RunTUI(ctx context.Context, d *command.Dispatcher, opts ...Option) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("dashboard requires a TTY")
	}
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := NewModel(d, opts...)
	model.logger.Debug("starting dashboard", "path", d.Store().Path, "tick", model.tickInterval)
	return runProgram(ctx, model)
}

func runProgram(ctx context.Context, model *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(model, opts...)
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
