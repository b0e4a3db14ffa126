package tui

import (
	"fmt"

	"sweep/internal/config"
	"sweep/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Result is how the selection screen ended.
type Result struct {
	Outcome  types.Outcome
	Selected []types.SweepItem
}

// Run shows the selection screen on the alternate screen and blocks until
// the user quits or confirms. The terminal is restored before Run returns.
func Run(items []types.SweepItem, cfg *config.Config, dryRun bool, opts ...tea.ProgramOption) (Result, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(items, cfg, dryRun), opts...)

	final, err := p.Run()
	if err != nil {
		return Result{Outcome: types.Cancelled}, fmt.Errorf("selection screen: %w", err)
	}

	m, ok := final.(*Model)
	if !ok {
		return Result{Outcome: types.Cancelled}, fmt.Errorf("unexpected model %T", final)
	}
	if m.Outcome() != types.Confirmed {
		return Result{Outcome: types.Cancelled}, nil
	}
	return Result{Outcome: types.Confirmed, Selected: m.SelectedItems()}, nil
}
