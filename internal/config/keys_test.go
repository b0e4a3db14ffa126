package config

import (
	"testing"

	"sweep/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKey(t *testing.T) {
	tests := []struct {
		input string
		want  KeySymbol
	}{
		{"esc", KeyEscape},
		{"Escape", KeyEscape},
		{"enter", KeyEnter},
		{"RETURN", KeyEnter},
		{"space", KeySpace},
		{"up", KeyUp},
		{"down", KeyDown},
		{"left", KeyLeft},
		{"right", KeyRight},
		{"tab", KeyTab},
		{"backspace", KeyBackspace},
		{"bs", KeyBackspace},
		{"k", "k"},
		{"K", "k"},
		{" k ", "k"},
		{"7", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ResolveKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveKeyUnknown(t *testing.T) {
	for _, input := range []string{"unknown", "", "  ", "f1", "ctrl+c", "é", "-"} {
		_, err := ResolveKey(input)
		require.Error(t, err, input)
		assert.True(t, errors.IsUnknownKey(err))

		var parseErr *errors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, input, parseErr.Input())
	}
}

func TestParseKeySet(t *testing.T) {
	t.Run("dedupes_in_order", func(t *testing.T) {
		set, err := ParseKeySet("cursor_up", []string{"K", "up", "k"})
		require.NoError(t, err)
		assert.Equal(t, KeySet{"k", KeyUp}, set)
	})

	for _, field := range []string{"quit", "select", "confirm", "select_all", "cursor_up", "cursor_down"} {
		t.Run("unknown_names_"+field, func(t *testing.T) {
			_, err := ParseKeySet(field, []string{"q", "unknown"})
			require.Error(t, err)
			assert.Equal(t, "keybindings."+field, errors.ConfigParam(err))
			assert.True(t, errors.IsUnknownKey(err))
			assert.Contains(t, err.Error(), "unknown")
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := ParseKeySet("confirm", nil)
		require.Error(t, err)
		assert.Equal(t, "keybindings.confirm", errors.ConfigParam(err))
		assert.False(t, errors.IsUnknownKey(err))
	})
}

func TestKeySet(t *testing.T) {
	set := KeySet{"q", KeyEscape, KeySpace}
	assert.True(t, set.Contains("q"))
	assert.True(t, set.Contains("esc"))
	assert.True(t, set.Contains(" "))
	assert.False(t, set.Contains("Q"))
	assert.Equal(t, []string{"q", "esc", " "}, set.Strings())
	assert.Equal(t, []string{"q", "esc", "space"}, set.ConfigNames())
}

func TestDefaultKeybindings(t *testing.T) {
	kb := DefaultKeybindings()
	assert.Equal(t, KeySet{"q", KeyEscape}, kb.Quit)
	assert.Equal(t, KeySet{KeySpace}, kb.Select)
	assert.Equal(t, KeySet{KeyEnter}, kb.Confirm)
	assert.Equal(t, KeySet{"a"}, kb.SelectAll)
	assert.Equal(t, KeySet{KeyUp, "k"}, kb.CursorUp)
	assert.Equal(t, KeySet{KeyDown, "j"}, kb.CursorDown)
}

func TestNormalizeColor(t *testing.T) {
	good := map[string]string{
		"blue":        "4",
		"Bright_Red":  "9",
		"grey":        "8",
		"#ABC":        "#aabbcc",
		"#1e90ff":     "#1e90ff",
		"212":         "212",
		" magenta ":   "5",
		"bright-cyan": "14",
	}
	for in, want := range good {
		got, err := NormalizeColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "blurple", "#12", "#ggg", "256", "-1", "#1234567"} {
		_, err := NormalizeColor(in)
		assert.Error(t, err, in)
	}
}
