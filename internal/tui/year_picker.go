package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/carpick/internal/domain"
)

// YearPickerModel lists the configured model years, most recent first.
type YearPickerModel struct {
	list   list.Model
	keymap KeyMap
}

// NewYearPickerModel creates a year picker for the given range.
func NewYearPickerModel(years domain.YearRange) YearPickerModel {
	values := years.Years()
	items := make([]list.Item, len(values))
	for i, y := range values {
		items[i] = yearItem(y)
	}

	return YearPickerModel{
		list:   newPickerList(items, "year", "years"),
		keymap: DefaultKeyMap(),
	}
}

// SetSize resizes the list.
func (m *YearPickerModel) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// SettingFilter reports whether the user is typing a filter.
func (m YearPickerModel) SettingFilter() bool {
	return m.list.SettingFilter()
}

// FilterApplied reports whether a filter narrows the list.
func (m YearPickerModel) FilterApplied() bool {
	return m.list.FilterState() == list.FilterApplied
}

// Update handles messages and updates the model state.
func (m YearPickerModel) Update(msg tea.Msg) (YearPickerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		if key.Matches(msg, m.keymap.Select) {
			if item, ok := m.list.SelectedItem().(yearItem); ok {
				return m, func() tea.Msg {
					return YearSelectedMsg{Year: int(item)}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m YearPickerModel) View() string {
	return m.list.View()
}
