package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"lifesim/internal/config"
	"lifesim/internal/sim"
)

// Run shows the board in the terminal until the user quits or ctx ends. The
// board must already be running.
func Run(ctx context.Context, board *sim.Board, s config.Settings) error {
	m := NewModel(board, s)
	defer m.Driver().Stop()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
