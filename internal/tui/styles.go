package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle is used for screen titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")) // Purple

	// SelectedItemStyle is used for highlighted/selected items.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")). // Light purple
				Bold(true)

	// NormalItemStyle is used for non-selected items.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light gray

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// HelpStyle is used for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Dark gray
			MarginTop(1)

	// AccentStyle is used for the back/close affordance and the spinner.
	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	// SelectionLineStyle renders the "2020 Ford" line under the title.
	SelectionLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("99")) // Light blue

	// TabStyle, ActiveTabStyle and DisabledTabStyle render the Year/Make/Model tabs.
	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	ActiveTabStyle = TabStyle.
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Underline(true)

	DisabledTabStyle = TabStyle.
				Foreground(lipgloss.Color("238"))

	// SummaryCardStyle frames the final summary.
	SummaryCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 3).
				MarginTop(1)
)
