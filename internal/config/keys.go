package config

import (
	"strings"

	"sweep/internal/errors"
)

// KeySymbol is a canonical key name as reported by bubbletea's KeyMsg.String().
type KeySymbol string

// Canonical symbols for the named keys.
const (
	KeyEscape    KeySymbol = "esc"
	KeyEnter     KeySymbol = "enter"
	KeySpace     KeySymbol = " "
	KeyUp        KeySymbol = "up"
	KeyDown      KeySymbol = "down"
	KeyLeft      KeySymbol = "left"
	KeyRight     KeySymbol = "right"
	KeyTab       KeySymbol = "tab"
	KeyBackspace KeySymbol = "backspace"
)

var namedKeys = map[string]KeySymbol{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"space":     KeySpace,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
}

// ResolveKey maps a configured key name to its canonical symbol.
// Matching is case-insensitive and ignores surrounding whitespace; a single
// ASCII letter or digit resolves to itself in lower case.
func ResolveKey(symbol string) (KeySymbol, error) {
	s := strings.ToLower(strings.TrimSpace(symbol))

	if k, ok := namedKeys[s]; ok {
		return k, nil
	}
	if len(s) == 1 && isASCIIAlnum(s[0]) {
		return KeySymbol(s), nil
	}
	return "", errors.NewParseError(symbol)
}

func isASCIIAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}

// ConfigName returns the name that ResolveKey maps back to k.
func (k KeySymbol) ConfigName() string {
	if k == KeySpace {
		return "space"
	}
	return string(k)
}

// KeySet is the set of keys bound to one action, in configuration order.
type KeySet []KeySymbol

// Contains reports whether the pressed key (bubbletea KeyMsg.String()) is bound.
func (s KeySet) Contains(pressed string) bool {
	for _, k := range s {
		if string(k) == pressed {
			return true
		}
	}
	return false
}

// Strings returns the symbols as plain strings, suitable for key.WithKeys.
func (s KeySet) Strings() []string {
	out := make([]string, len(s))
	for i, k := range s {
		out[i] = string(k)
	}
	return out
}

// ConfigNames returns the symbols as they would be written in a config file.
func (s KeySet) ConfigNames() []string {
	out := make([]string, len(s))
	for i, k := range s {
		out[i] = k.ConfigName()
	}
	return out
}

// ParseKeySet resolves every name in values. Errors name the field, e.g.
// "keybindings.quit", so a bad entry can be found in the config file.
func ParseKeySet(field string, values []string) (KeySet, error) {
	param := "keybindings." + field
	if len(values) == 0 {
		return nil, errors.NewConfigError("no keys bound", param, errors.InvalidConfig, nil)
	}

	set := make(KeySet, 0, len(values))
	for _, v := range values {
		k, err := ResolveKey(v)
		if err != nil {
			return nil, errors.NewConfigError("invalid key binding", param, errors.InvalidConfig, err)
		}
		if !set.Contains(string(k)) {
			set = append(set, k)
		}
	}
	return set, nil
}

// Keybindings holds the resolved key set for each action.
type Keybindings struct {
	Quit       KeySet
	Select     KeySet
	Confirm    KeySet
	SelectAll  KeySet
	CursorUp   KeySet
	CursorDown KeySet
}

// DefaultKeybindings returns the bindings used when a field is not configured.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		Quit:       KeySet{"q", KeyEscape},
		Select:     KeySet{KeySpace},
		Confirm:    KeySet{KeyEnter},
		SelectAll:  KeySet{"a"},
		CursorUp:   KeySet{KeyUp, "k"},
		CursorDown: KeySet{KeyDown, "j"},
	}
}
