package styles

import (
	"sweep/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the core UI styles
type Theme struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	DryRun     lipgloss.Style
	Cursor     lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Status     lipgloss.Style
	Warning    lipgloss.Style
	Help       lipgloss.Style

	PackageIcon  string
	ArtifactIcon string
}

// NewTheme builds the styles for a configured theme. The cursor row uses
// the configured background colour.
func NewTheme(t config.Theme) Theme {
	return Theme{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B61FF")),
		DryRun: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C")),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(t.SelectedBg)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73F59F")).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9")),

		PackageIcon:  t.PackageIcon,
		ArtifactIcon: t.ArtifactIcon,
	}
}
