package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/carpick/internal/domain"
	"github.com/h0rv/carpick/internal/store"
)

// Options configures the app model.
type Options struct {
	Years       domain.YearRange
	StalePolicy store.StalePolicy
}

// AppModel is the root Bubble Tea model. It owns the selection flow and
// renders the screen the flow's router points at.
type AppModel struct {
	// Dependencies
	flow *store.Flow
	ctx  context.Context

	// Screens
	years   YearPickerModel
	makes   CatalogPickerModel
	models  CatalogPickerModel
	summary SummaryModel

	helpOverlay HelpModel
	footer      help.Model
	keymap      KeyMap
	showHelp    bool

	width  int
	height int
}

// NewAppModel creates the app model. The flow may already hold a selection.
func NewAppModel(source VehicleSource, flow *store.Flow, ctx context.Context, opts Options) AppModel {
	if opts.Years.Count <= 0 {
		opts.Years = domain.DefaultYearRange()
	}

	return AppModel{
		flow:        flow,
		ctx:         ctx,
		years:       NewYearPickerModel(opts.Years),
		makes:       NewMakePickerModel(source, ctx, opts.StalePolicy),
		models:      NewModelPickerModel(source, ctx, opts.StalePolicy),
		summary:     NewSummaryModel(),
		helpOverlay: NewHelpModel(),
		footer:      help.New(),
		keymap:      DefaultKeyMap(),
		width:       80,
		height:      24,
	}
}

// Flow returns the selection flow driven by the app.
func (m AppModel) Flow() *store.Flow {
	return m.flow
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// A selection only counts on the screen that made it; a repeated enter
	// delivers a second message after the flow has already moved on.
	case YearSelectedMsg:
		if m.flow.Active() != domain.ScreenYear {
			return m, nil
		}
		return m.enter(domain.ScreenYear, m.flow.SelectYear(msg.Year))

	case MakeSelectedMsg:
		if m.flow.Active() != domain.ScreenMake {
			return m, nil
		}
		return m.enter(domain.ScreenMake, m.flow.SelectMake(msg.Make))

	case ModelSelectedMsg:
		if m.flow.Active() != domain.ScreenModel {
			return m, nil
		}
		return m.enter(domain.ScreenModel, m.flow.SelectModel(msg.Model))

	case ResetMsg:
		m.flow.Reset()
		m.makes = m.makes.Reset()
		m.models = m.models.Reset()
		m.summary = m.summary.WithSelection(store.Selection{})
		return m, nil

	case catalogLoadedMsg:
		var cmd tea.Cmd
		switch msg.screen {
		case domain.ScreenMake:
			m.makes, cmd = m.makes.Update(msg)
		case domain.ScreenModel:
			m.models, cmd = m.models.Update(msg)
		}
		return m, cmd

	case spinner.TickMsg:
		// Each spinner ignores ticks carrying another spinner's ID
		var makesCmd, modelsCmd tea.Cmd
		m.makes, makesCmd = m.makes.Update(msg)
		m.models, modelsCmd = m.models.Update(msg)
		return m, tea.Batch(makesCmd, modelsCmd)

	case openResultMsg:
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		return m, cmd
	}

	return m.updateActive(msg)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Help overlay swallows everything except its own toggles
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Back) {
			m.showHelp = false
			return m, nil
		}
		if key.Matches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// Filter input owns the keyboard while it is open
	if m.settingFilter() {
		return m.updateActive(msg)
	}

	// First esc clears an applied filter instead of leaving the screen
	if msg.String() == "esc" && m.filterApplied() {
		return m.updateActive(msg)
	}

	keymap := m.keymap.ForScreen(m.flow.Active(), m.flow)
	switch {
	case key.Matches(msg, keymap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, keymap.Back):
		// Year always shows the close control
		from := m.flow.Active()
		if from == domain.ScreenYear {
			return m, tea.Quit
		}
		screen, _ := m.flow.GoBack()
		return m.enter(from, screen)

	case key.Matches(msg, keymap.Year):
		return m.navigate(domain.ScreenYear)

	case key.Matches(msg, keymap.Make):
		return m.navigate(domain.ScreenMake)

	case key.Matches(msg, keymap.Model):
		return m.navigate(domain.ScreenModel)
	}

	return m.updateActive(msg)
}

// navigate handles a header tab. Disabled tabs are ignored.
func (m AppModel) navigate(screen domain.Screen) (tea.Model, tea.Cmd) {
	from := m.flow.Active()
	if screen == from {
		return m, nil
	}
	next, ok := m.flow.NavigateTo(screen)
	if !ok {
		return m, nil
	}
	return m.enter(from, next)
}

// enter moves from one screen to another. The list of a catalog screen that is
// left is discarded; a catalog screen that becomes active fetches its list again.
func (m AppModel) enter(from, screen domain.Screen) (tea.Model, tea.Cmd) {
	if from != screen {
		switch from {
		case domain.ScreenMake:
			m.makes = m.makes.Leave()
		case domain.ScreenModel:
			m.models = m.models.Leave()
		}
	}

	sel := m.flow.Selection()

	var cmd tea.Cmd
	switch screen {
	case domain.ScreenMake:
		trigger := ""
		if sel.HasYear() {
			trigger = strconv.Itoa(sel.Year)
		}
		m.makes, cmd = m.makes.Activate(trigger)
	case domain.ScreenModel:
		m.models, cmd = m.models.Activate(sel.Make)
	case domain.ScreenSummary:
		m.summary = m.summary.WithSelection(sel)
	}
	return m, cmd
}

// updateActive delegates msg to the active screen.
func (m AppModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.flow.Active() {
	case domain.ScreenYear:
		m.years, cmd = m.years.Update(msg)
	case domain.ScreenMake:
		m.makes, cmd = m.makes.Update(msg)
	case domain.ScreenModel:
		m.models, cmd = m.models.Update(msg)
	case domain.ScreenSummary:
		m.summary, cmd = m.summary.Update(msg)
	}
	return m, cmd
}

func (m AppModel) settingFilter() bool {
	switch m.flow.Active() {
	case domain.ScreenYear:
		return m.years.SettingFilter()
	case domain.ScreenMake:
		return m.makes.SettingFilter()
	case domain.ScreenModel:
		return m.models.SettingFilter()
	}
	return false
}

func (m AppModel) filterApplied() bool {
	switch m.flow.Active() {
	case domain.ScreenYear:
		return m.years.FilterApplied()
	case domain.ScreenMake:
		return m.makes.FilterApplied()
	case domain.ScreenModel:
		return m.models.FilterApplied()
	}
	return false
}

// resize gives every screen the space left between header and footer.
func (m *AppModel) resize() {
	// Title, selection line, tabs and a blank line above; footer below
	const chrome = 4 + 2
	bodyHeight := m.height - chrome
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	m.years.SetSize(m.width, bodyHeight)
	m.makes.SetSize(m.width, bodyHeight)
	m.models.SetSize(m.width, bodyHeight)
	m.summary.SetSize(m.width, bodyHeight)
	m.footer.Width = m.width
}

// View renders the current screen.
func (m AppModel) View() string {
	header := renderHeader(m.flow, m.width)

	var body string
	if m.showHelp {
		body = m.helpOverlay.View(m.keymap.ForScreen(m.flow.Active(), m.flow), m.width)
	} else {
		switch m.flow.Active() {
		case domain.ScreenYear:
			body = m.years.View()
		case domain.ScreenMake:
			body = m.makes.View()
		case domain.ScreenModel:
			body = m.models.View()
		case domain.ScreenSummary:
			body = m.summary.View()
		}
	}

	footer := HelpStyle.Render(m.footer.View(m.keymap.ForScreen(m.flow.Active(), m.flow)))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}
