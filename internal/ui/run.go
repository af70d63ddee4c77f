// Package ui provides the interactive terminal task list.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/api"
)

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, a api.BusinessAPI, opts Options) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("the task list UI requires a terminal")
	}

	model := NewModel(ctx, a, opts)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
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
