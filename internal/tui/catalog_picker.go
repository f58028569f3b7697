package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/carpick/internal/domain"
	"github.com/h0rv/carpick/internal/logging"
	"github.com/h0rv/carpick/internal/store"
	"go.uber.org/zap"
)

// Lines reserved under the list for the failure banner.
const bannerLines = 2

// VehicleSource provides the make and model lists.
// *vpic.Client satisfies it.
type VehicleSource interface {
	GetMakes(ctx context.Context) ([]domain.Make, error)
	GetModels(ctx context.Context, makeName string) ([]domain.Model, error)
}

// fetchFunc performs one lookup for trigger.
type fetchFunc func(ctx context.Context, trigger string) ([]catalogEntry, error)

// CatalogPickerModel is a list screen fed by a remote lookup: the Make screen
// (triggered by the year) or the Model screen (triggered by the make).
type CatalogPickerModel struct {
	// Dependencies
	ctx      context.Context
	fetch    fetchFunc
	selected func(name string) tea.Msg

	screen  domain.Screen
	noun    string // plural noun used in status text
	trigger string // trigger of the latest activation

	loader  *store.Loader[catalogEntry]
	list    list.Model
	spinner spinner.Model
	keymap  KeyMap
}

// NewMakePickerModel creates the Make screen. The make list is the same for
// every year; the year only triggers the lookup.
func NewMakePickerModel(source VehicleSource, ctx context.Context, policy store.StalePolicy) CatalogPickerModel {
	fetch := func(ctx context.Context, _ string) ([]catalogEntry, error) {
		makes, err := source.GetMakes(ctx)
		if err != nil {
			return nil, err
		}
		entries := make([]catalogEntry, len(makes))
		for i, mk := range makes {
			entries[i] = catalogEntry{ID: mk.ID, Name: mk.Name}
		}
		return entries, nil
	}
	selected := func(name string) tea.Msg { return MakeSelectedMsg{Make: name} }

	return newCatalogPickerModel(domain.ScreenMake, "make", "makes", ctx, fetch, selected, policy)
}

// NewModelPickerModel creates the Model screen, triggered by the chosen make.
func NewModelPickerModel(source VehicleSource, ctx context.Context, policy store.StalePolicy) CatalogPickerModel {
	fetch := func(ctx context.Context, makeName string) ([]catalogEntry, error) {
		models, err := source.GetModels(ctx, makeName)
		if err != nil {
			return nil, err
		}
		entries := make([]catalogEntry, len(models))
		for i, md := range models {
			entries[i] = catalogEntry{ID: md.ID, Name: md.Name}
		}
		return entries, nil
	}
	selected := func(name string) tea.Msg { return ModelSelectedMsg{Model: name} }

	return newCatalogPickerModel(domain.ScreenModel, "model", "models", ctx, fetch, selected, policy)
}

func newCatalogPickerModel(
	screen domain.Screen,
	singular, plural string,
	ctx context.Context,
	fetch fetchFunc,
	selected func(string) tea.Msg,
	policy store.StalePolicy,
) CatalogPickerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AccentStyle

	return CatalogPickerModel{
		ctx:      ctx,
		fetch:    fetch,
		selected: selected,
		screen:   screen,
		noun:     plural,
		loader:   store.NewLoader[catalogEntry](policy),
		list:     newPickerList(nil, singular, plural),
		spinner:  sp,
		keymap:   DefaultKeyMap(),
	}
}

// Activate is called whenever the screen becomes active. Every activation with
// a trigger issues a new lookup; an empty trigger leaves the list as it is.
func (m CatalogPickerModel) Activate(trigger string) (CatalogPickerModel, tea.Cmd) {
	m.trigger = trigger
	return m.load(trigger)
}

// Leave discards the list when the screen stops being active.
func (m CatalogPickerModel) Leave() CatalogPickerModel {
	m.loader.Release()
	m.list.ResetFilter()
	m.list.SetItems(nil)
	m.list.ResetSelected()
	return m
}

// Refresh re-issues the lookup for the current trigger.
func (m CatalogPickerModel) Refresh() (CatalogPickerModel, tea.Cmd) {
	return m.load(m.trigger)
}

// Reset discards the list and ignores every response still in flight.
func (m CatalogPickerModel) Reset() CatalogPickerModel {
	m.loader.Reset()
	m.trigger = ""
	m.list.ResetFilter()
	m.list.SetItems(nil)
	m.list.ResetSelected()
	return m
}

// Loader exposes the load state of the screen.
func (m CatalogPickerModel) Loader() *store.Loader[catalogEntry] {
	return m.loader
}

// SetSize resizes the list, leaving room for the failure banner.
func (m *CatalogPickerModel) SetSize(width, height int) {
	m.list.SetSize(width, max(height-bannerLines, 1))
}

// SettingFilter reports whether the user is typing a filter.
func (m CatalogPickerModel) SettingFilter() bool {
	return m.list.SettingFilter()
}

// FilterApplied reports whether a filter narrows the list.
func (m CatalogPickerModel) FilterApplied() bool {
	return m.list.FilterState() == list.FilterApplied
}

func (m CatalogPickerModel) load(trigger string) (CatalogPickerModel, tea.Cmd) {
	ticket, ok := m.loader.Begin(trigger)
	if !ok {
		return m, nil
	}

	logging.Debug("catalog fetch started",
		zap.Stringer("screen", m.screen),
		zap.String("trigger", trigger),
		zap.Uint64("generation", ticket.Generation),
	)

	ctx, fetch, screen := m.ctx, m.fetch, m.screen
	fetchCmd := func() tea.Msg {
		entries, err := fetch(ctx, ticket.Trigger)
		return catalogLoadedMsg{screen: screen, ticket: ticket, entries: entries, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, fetchCmd)
}

// Update handles messages and updates the model state.
func (m CatalogPickerModel) Update(msg tea.Msg) (CatalogPickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.screen != m.screen {
			return m, nil
		}
		return m.resolve(msg)

	case spinner.TickMsg:
		if !m.loader.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// While loading only the spinner is shown
		if m.loader.Loading() {
			return m, nil
		}
		if !m.list.SettingFilter() {
			switch {
			case key.Matches(msg, m.keymap.Select):
				if item, ok := m.list.SelectedItem().(catalogEntry); ok {
					selected := m.selected
					return m, func() tea.Msg { return selected(item.Name) }
				}
				return m, nil
			case key.Matches(msg, m.keymap.Refresh):
				return m.Refresh()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m CatalogPickerModel) resolve(msg catalogLoadedMsg) (CatalogPickerModel, tea.Cmd) {
	fields := []zap.Field{
		zap.Stringer("screen", m.screen),
		zap.String("trigger", msg.ticket.Trigger),
		zap.Uint64("generation", msg.ticket.Generation),
	}

	if msg.err != nil {
		fields = append(fields, zap.Error(msg.err))
	}

	if !m.loader.Resolve(msg.ticket, msg.entries, msg.err) {
		logging.Debug("stale catalog response discarded", fields...)
		return m, nil
	}

	// Failures stop here: they are logged and never reach the selection flow
	if msg.err != nil {
		logging.Warn("catalog fetch failed", fields...)
		return m, nil
	}

	entries := m.loader.Items()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	cmd := m.list.SetItems(items)
	m.list.ResetSelected()

	logging.Debug("catalog loaded", append(fields, zap.Int("count", len(entries)))...)
	return m, cmd
}

// View renders the model.
func (m CatalogPickerModel) View() string {
	if m.loader.Loading() {
		return fmt.Sprintf("%s Loading %s...", m.spinner.View(), m.noun)
	}

	view := m.list.View()
	if err := m.loader.Err(); err != nil {
		view += "\n" + ErrorStyle.Render(fmt.Sprintf("Couldn't load %s: %v", m.noun, err)) +
			"\n" + HelpStyle.MarginTop(0).Render("press r to retry")
	}
	return view
}
