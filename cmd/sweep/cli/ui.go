package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ColorTheme represents a set of colors for the CLI
type ColorTheme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme is used for all status output
var DefaultTheme = ColorTheme{
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// Output destinations. Errors go to Err, everything else to Out.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintln(Out, DefaultTheme.Success.Render("✓ "+message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintln(Err, DefaultTheme.Error.Render("✗ "+message))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintln(Out, DefaultTheme.Warning.Render("! "+message))
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Fprintln(Out, DefaultTheme.Info.Render("ℹ "+message))
}

// PrintHeader prints a section header
func PrintHeader(message string) {
	fmt.Fprintln(Out, "\n"+DefaultTheme.Header.Render(message))
}

// PrintMuted prints a dimmed, indented list entry
func PrintMuted(message string) {
	fmt.Fprintln(Out, DefaultTheme.Muted.Render("  - "+message))
}
