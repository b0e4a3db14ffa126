package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the selection engine.
// It's kept in pkg/types so the model and the help footer share it.
type KeyMap struct {
	// General
	Quit      key.Binding
	ForceQuit key.Binding // ctrl+c, never configurable

	// Navigation
	Up   key.Binding
	Down key.Binding

	// Selection & Actions
	Select    key.Binding
	SelectAll key.Binding
	Confirm   key.Binding

	// Confirmation dialog
	Affirm key.Binding
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.SelectAll, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.SelectAll},
		{k.Confirm, k.Quit, k.ForceQuit},
	}
}
