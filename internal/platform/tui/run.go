package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/platy/tag-sim/internal/sim"
	"github.com/platy/tag-sim/internal/storage"
)

// Run starts the live viewer in the local terminal and blocks until the
// user quits.
func Run(simCfg sim.Config, tickRate int, store *storage.Store) error {
	model, err := NewModel(simCfg, tickRate, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
