package config

import (
	"fmt"
	"strconv"
	"strings"
)

var ansiColors = map[string]int{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"gray":           8,
	"grey":           8,
	"bright-black":   8,
	"bright-red":     9,
	"bright-green":   10,
	"bright-yellow":  11,
	"bright-blue":    12,
	"bright-magenta": 13,
	"bright-cyan":    14,
	"bright-white":   15,
}

// NormalizeColor turns a configured colour into a value lipgloss.Color accepts:
// an ANSI index ("4") or a six digit hex code ("#1e90ff").
func NormalizeColor(s string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(s))
	c = strings.NewReplacer("_", "-", " ", "-").Replace(c)

	if idx, ok := ansiColors[c]; ok {
		return strconv.Itoa(idx), nil
	}

	if strings.HasPrefix(c, "#") {
		hex := c[1:]
		if !isHex(hex) {
			return "", fmt.Errorf("invalid hex colour %q", s)
		}
		switch len(hex) {
		case 3:
			return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), nil
		case 6:
			return "#" + hex, nil
		}
		return "", fmt.Errorf("hex colour %q must have 3 or 6 digits", s)
	}

	if n, err := strconv.Atoi(c); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("ANSI colour %d out of range 0-255", n)
		}
		return strconv.Itoa(n), nil
	}

	return "", fmt.Errorf("unknown colour %q", s)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(('0' <= c && c <= '9') || ('a' <= c && c <= 'f')) {
			return false
		}
	}
	return true
}
