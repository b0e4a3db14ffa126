package views

import (
	"fmt"
	"strings"

	"sweep/internal/tui/common"
	"sweep/internal/tui/styles"
	"sweep/pkg/types"

	"github.com/charmbracelet/bubbles/help"
)

// chromeLines is the height taken by everything but the item rows:
// padding, title, blank line, status, help.
const chromeLines = 7

// RenderMainView renders the whole screen for the model's mode.
func RenderMainView(m common.ModelReader) string {
	switch m.Mode() {
	case types.ConfirmingDeletion:
		return RenderConfirmView(m)
	case types.Done:
		return ""
	}

	theme := m.Theme()
	var sb strings.Builder
	sb.WriteString(renderTitle(m))
	sb.WriteString("\n\n")
	sb.WriteString(renderItems(m))
	sb.WriteString("\n")
	sb.WriteString(renderStatus(m))
	sb.WriteString("\n")
	sb.WriteString(RenderKeyCommands(m))

	return theme.App.Render(sb.String())
}

// RenderConfirmView lists the selection and asks for a y/N answer.
func RenderConfirmView(m common.ModelReader) string {
	theme := m.Theme()
	var sb strings.Builder

	count := m.SelectedCount()
	if count == 0 {
		sb.WriteString(theme.Warning.Render("Nothing selected."))
		sb.WriteString("\n\n")
		sb.WriteString("Continue anyway? [y/N]")
		return theme.App.Render(sb.String())
	}

	sb.WriteString(theme.Warning.Render("⚠  Permanently remove the following items?"))
	sb.WriteString("\n\n")
	for i, item := range m.Items() {
		if m.IsSelected(i) {
			fmt.Fprintf(&sb, "  - %s %s\n", icon(theme, item), item.Display())
		}
	}
	fmt.Fprintf(&sb, "\nPermanently remove %d item(s)? [y/N]", count)

	return theme.App.Render(sb.String())
}

// RenderKeyCommands renders the short help line for the active bindings.
func RenderKeyCommands(m common.ModelReader) string {
	return newHelp(m).View(m.KeyMap())
}

func newHelp(m common.ModelReader) help.Model {
	theme := m.Theme()
	h := help.New()
	h.Width, _ = m.Size()
	h.Styles.ShortKey = theme.Help.Bold(true)
	h.Styles.ShortDesc = theme.Help
	h.Styles.ShortSeparator = theme.Status
	return h
}

func renderTitle(m common.ModelReader) string {
	theme := m.Theme()
	title := theme.Title.Render("🧹 sweep")
	if m.DryRun() {
		title += " " + theme.DryRun.Render("DRY RUN: nothing will be deleted")
	}
	return title
}

func renderItems(m common.ModelReader) string {
	items := m.Items()
	if len(items) == 0 {
		return ""
	}

	theme := m.Theme()
	rows := 0
	if _, height := m.Size(); height > 0 {
		rows = max(height-chromeLines, 1)
	}
	start, end := VisibleRange(len(items), m.Cursor(), rows)

	var sb strings.Builder
	for i := start; i < end; i++ {
		sb.WriteString(renderRow(theme, items[i], m.IsSelected(i), i == m.Cursor()))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderRow(theme styles.Theme, item types.SweepItem, selected, cursor bool) string {
	marker := "[ ]"
	if selected {
		marker = "[x]"
	}
	line := fmt.Sprintf("%s %s %s", marker, icon(theme, item), item.Display())

	switch {
	case cursor:
		return theme.Cursor.Render("> " + line)
	case selected:
		return theme.Selected.Render("  " + line)
	default:
		return theme.Unselected.Render("  " + line)
	}
}

func renderStatus(m common.ModelReader) string {
	return m.Theme().Status.Render(fmt.Sprintf("%d of %d selected", m.SelectedCount(), len(m.Items())))
}

func icon(theme styles.Theme, item types.SweepItem) string {
	switch item.(type) {
	case types.Package:
		return theme.PackageIcon
	case types.HomeArtifact:
		return theme.ArtifactIcon
	default:
		return " "
	}
}

// VisibleRange returns the half-open range of rows to draw so that the
// cursor stays on screen. rows <= 0 means unlimited.
func VisibleRange(n, cursor, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, start + rows
}
