// Package tui implements the interactive selection screen.
package tui

import (
	"sweep/internal/config"
	"sweep/internal/tui/styles"
	"sweep/internal/tui/views"
	"sweep/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the selection state machine. It starts in Browsing and ends in
// Done with an Outcome; only key presses move it between modes.
type Model struct {
	items    []types.SweepItem
	selected []bool
	cursor   int
	mode     types.Mode
	outcome  types.Outcome
	dryRun   bool

	keys  types.KeyMap
	theme styles.Theme

	width  int
	height int
}

// New creates a model over items. The item order is never changed.
func New(items []types.SweepItem, cfg *config.Config, dryRun bool) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Model{
		items:    items,
		selected: make([]bool, len(items)),
		mode:     types.Browsing,
		outcome:  types.Pending,
		dryRun:   dryRun,
		keys:     NewKeyMap(cfg.Keybindings),
		theme:    styles.NewTheme(cfg.Theme),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		newModel := m.copy()
		newModel.width, newModel.height = msg.Width, msg.Height
		return newModel, nil
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	newModel := m.copy()

	switch newModel.mode {
	case types.Browsing:
		return newModel.handleBrowsingKeys(msg)
	case types.ConfirmingDeletion:
		return newModel.handleConfirmKeys(msg)
	default:
		return newModel, nil
	}
}

func (m *Model) copy() *Model {
	newModel := *m
	newModel.selected = make([]bool, len(m.selected))
	copy(newModel.selected, m.selected)
	return &newModel
}

// handleBrowsingKeys checks bindings in a fixed order so that a key bound
// to several actions triggers the first: quit, select, select all, up,
// down, confirm.
func (m *Model) handleBrowsingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit, m.keys.ForceQuit):
		return m.finish(types.Cancelled)
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case key.Matches(msg, m.keys.SelectAll):
		all := !m.allSelected()
		for i := range m.selected {
			m.selected[i] = all
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.dryRun {
			return m.finish(types.Confirmed)
		}
		m.mode = types.ConfirmingDeletion
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Affirm) {
		return m.finish(types.Confirmed)
	}
	return m.finish(types.Cancelled)
}

func (m *Model) finish(outcome types.Outcome) (tea.Model, tea.Cmd) {
	m.mode = types.Done
	m.outcome = outcome
	return m, tea.Quit
}

func (m *Model) allSelected() bool {
	for _, s := range m.selected {
		if !s {
			return false
		}
	}
	return true
}

// Getters
func (m *Model) Items() []types.SweepItem {
	return m.items
}

func (m *Model) IsSelected(i int) bool {
	return i >= 0 && i < len(m.selected) && m.selected[i]
}

func (m *Model) SelectedCount() int {
	n := 0
	for _, s := range m.selected {
		if s {
			n++
		}
	}
	return n
}

func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Mode() types.Mode {
	return m.mode
}

func (m *Model) Outcome() types.Outcome {
	return m.outcome
}

func (m *Model) DryRun() bool {
	return m.dryRun
}

func (m *Model) Theme() styles.Theme {
	return m.theme
}

func (m *Model) KeyMap() types.KeyMap {
	return m.keys
}

func (m *Model) Size() (int, int) {
	return m.width, m.height
}

// SelectedItems returns the selected items in list order.
func (m *Model) SelectedItems() []types.SweepItem {
	var out []types.SweepItem
	for i, item := range m.items {
		if m.selected[i] {
			out = append(out, item)
		}
	}
	return out
}
