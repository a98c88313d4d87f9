package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the interactive converter, optionally pre-filled with an
// initial size string.
func Run(ctx context.Context, initial string) error {
	prog := tea.NewProgram(NewModel(initial), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}
