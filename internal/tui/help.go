package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	// HelpOverlayStyle defines the style for the help overlay container.
	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		MarginTop(1)
)

// HelpModel wraps the bubbles help component.
type HelpModel struct {
	help help.Model
}

// NewHelpModel creates a new help overlay model.
func NewHelpModel() HelpModel {
	h := help.New()
	h.ShowAll = true

	return HelpModel{help: h}
}

// View renders the full help for keymap inside the overlay frame.
func (m HelpModel) View(keymap KeyMap, width int) string {
	if width > 8 {
		m.help.Width = width - 8 // Account for padding and border
	}
	return HelpOverlayStyle.Render(m.help.View(keymap))
}
