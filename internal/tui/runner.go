package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reqlens/reqlens/internal/sink"
)

// Run starts the interactive browser over a completed parse result.
// This function blocks until the user quits.
func Run(r *sink.Result) error {
	model := NewModel(r.Source, r.Entries, r.Groups, r.Stats)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
