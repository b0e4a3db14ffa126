package tui

import (
	"strings"

	"sweep/internal/config"
	"sweep/pkg/types"

	"github.com/charmbracelet/bubbles/key"
)

// NewKeyMap builds the bubbles bindings for the configured key sets.
func NewKeyMap(kb config.Keybindings) types.KeyMap {
	return types.KeyMap{
		Quit:      binding(kb.Quit, "quit"),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Up:        binding(kb.CursorUp, "up"),
		Down:      binding(kb.CursorDown, "down"),
		Select:    binding(kb.Select, "select"),
		SelectAll: binding(kb.SelectAll, "select all"),
		Confirm:   binding(kb.Confirm, "confirm"),
		Affirm:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	}
}

func binding(set config.KeySet, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(set.Strings()...),
		key.WithHelp(helpLabel(set), desc),
	)
}

var arrows = map[string]string{
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
}

// helpLabel renders a key set as "↑/k" for the help footer.
func helpLabel(set config.KeySet) string {
	names := set.ConfigNames()
	for i, n := range names {
		if a, ok := arrows[n]; ok {
			names[i] = a
		}
	}
	return strings.Join(names, "/")
}
