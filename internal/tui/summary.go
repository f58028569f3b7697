package tui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/carpick/internal/logging"
	"github.com/h0rv/carpick/internal/store"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// vehiclePageBase is the public NHTSA page for a year, make and model.
const vehiclePageBase = "https://www.nhtsa.gov/vehicle"

var (
	summaryLabelStyle = HelpStyle.MarginTop(0)
	summaryValueStyle = TitleStyle
)

// SummaryModel shows the completed selection.
type SummaryModel struct {
	selection store.Selection
	open      func(url string) error
	status    string
	width     int
	keymap    KeyMap
}

// NewSummaryModel creates an empty summary screen.
func NewSummaryModel() SummaryModel {
	return SummaryModel{
		open:   browser.OpenURL,
		width:  80,
		keymap: DefaultKeyMap(),
	}
}

// WithSelection returns the model showing sel. Any previous status is cleared.
func (m SummaryModel) WithSelection(sel store.Selection) SummaryModel {
	m.selection = sel
	m.status = ""
	return m
}

// SetSize sets the available width.
func (m *SummaryModel) SetSize(width, _ int) {
	m.width = width
}

// URL returns the NHTSA page of the selected vehicle.
func (m SummaryModel) URL() string {
	if !m.selection.HasModel() {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s/%s",
		vehiclePageBase,
		strconv.Itoa(m.selection.Year),
		url.PathEscape(m.selection.Make),
		url.PathEscape(m.selection.Model),
	)
}

// Update handles messages and updates the model state.
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case openResultMsg:
		if msg.err != nil {
			logging.Warn("failed to open browser", zap.String("url", msg.url), zap.Error(msg.err))
			m.status = ErrorStyle.Render(fmt.Sprintf("Couldn't open %s", msg.url))
		} else {
			m.status = HelpStyle.MarginTop(0).Render("Opened " + msg.url)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Reset):
			return m, func() tea.Msg { return ResetMsg{} }
		case key.Matches(msg, m.keymap.Open):
			target := m.URL()
			if target == "" {
				return m, nil
			}
			open := m.open
			return m, func() tea.Msg {
				return openResultMsg{url: target, err: open(target)}
			}
		}
	}
	return m, nil
}

// View renders the model.
func (m SummaryModel) View() string {
	wrapWidth := m.width - 10
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var b strings.Builder
	b.WriteString(summaryLabelStyle.Render("Car info :"))
	b.WriteString("\n")
	b.WriteString(summaryValueStyle.Render(wordwrap.String(m.selection.String(), wrapWidth)))

	view := SummaryCardStyle.Render(b.String())
	if m.status != "" {
		view += "\n" + m.status
	}
	return view
}
