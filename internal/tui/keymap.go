package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/h0rv/carpick/internal/domain"
	"github.com/h0rv/carpick/internal/store"
)

// KeyMap defines all key bindings of the application.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Filter key.Binding
	Back   key.Binding

	// Header tabs
	Year  key.Binding
	Make  key.Binding
	Model key.Binding

	// Actions
	Refresh key.Binding
	Reset   key.Binding
	Open    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Year: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "year"),
		),
		Make: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "make"),
		),
		Model: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "model"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "reset"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open on nhtsa.gov"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForScreen returns a copy of the key map with bindings enabled only where they
// apply. Header tabs are disabled until their screen is reachable.
func (k KeyMap) ForScreen(screen domain.Screen, flow *store.Flow) KeyMap {
	onList := screen != domain.ScreenSummary
	onCatalog := screen == domain.ScreenMake || screen == domain.ScreenModel

	k.Up.SetEnabled(onList)
	k.Down.SetEnabled(onList)
	k.Select.SetEnabled(onList)
	k.Filter.SetEnabled(onList)
	k.Refresh.SetEnabled(onCatalog)
	k.Reset.SetEnabled(screen == domain.ScreenSummary)
	k.Open.SetEnabled(screen == domain.ScreenSummary)

	k.Make.SetEnabled(flow.CanNavigate(domain.ScreenMake))
	k.Model.SetEnabled(flow.CanNavigate(domain.ScreenModel))

	if screen == domain.ScreenYear {
		k.Back.SetHelp("esc", "close")
	} else {
		k.Back.SetHelp("esc", "back")
	}
	return k
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Reset, k.Back, k.Year, k.Make, k.Model, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Filter},
		{k.Back, k.Year, k.Make, k.Model},
		{k.Refresh, k.Reset, k.Open, k.Help, k.Quit},
	}
}
