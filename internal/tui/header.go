package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/carpick/internal/domain"
	"github.com/h0rv/carpick/internal/store"
	"github.com/muesli/reflow/truncate"
)

var headerTabs = []struct {
	screen domain.Screen
	label  string
}{
	{domain.ScreenYear, "1 Year"},
	{domain.ScreenMake, "2 Make"},
	{domain.ScreenModel, "3 Model"},
}

// renderHeader draws the affordance icon, the screen title, the current
// selection and the Year/Make/Model tabs.
func renderHeader(flow *store.Flow, width int) string {
	active := flow.Active()

	icon := "‹ back"
	if active == domain.ScreenYear {
		icon = "✕ close"
	}

	top := AccentStyle.Render(icon)
	if title := active.Title(); title != "" {
		top += "  " + TitleStyle.Render(title)
	}

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")

	if sel := flow.Selection(); !sel.IsEmpty() {
		line := sel.String()
		if width > 4 {
			line = truncate.StringWithTail(line, uint(width-2), "…")
		}
		b.WriteString(SelectionLineStyle.Render(line))
		b.WriteString("\n")
	}

	tabs := make([]string, 0, len(headerTabs))
	for _, t := range headerTabs {
		style := TabStyle
		switch {
		case t.screen == active:
			style = ActiveTabStyle
		case !flow.CanNavigate(t.screen):
			style = DisabledTabStyle
		}
		tabs = append(tabs, style.Render(t.label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	return b.String()
}
