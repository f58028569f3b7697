package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// labeledItem is a list item rendered as a single line.
type labeledItem interface {
	list.Item
	Label() string
}

// yearItem is one entry of the Year screen.
type yearItem int

func (i yearItem) FilterValue() string { return strconv.Itoa(int(i)) }
func (i yearItem) Label() string       { return strconv.Itoa(int(i)) }

// catalogEntry is one make or model as shown in a catalog list.
type catalogEntry struct {
	ID   int
	Name string
}

func (i catalogEntry) FilterValue() string { return i.Name }
func (i catalogEntry) Label() string       { return i.Name }

// lineDelegate renders labeledItems one per line with a cursor marker.
type lineDelegate struct{}

func (d lineDelegate) Height() int                             { return 1 }
func (d lineDelegate) Spacing() int                            { return 0 }
func (d lineDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(labeledItem)
	if !ok {
		return
	}

	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> "+i.Label()))
		return
	}
	fmt.Fprint(w, NormalItemStyle.Render("  "+i.Label()))
}

// newPickerList builds a list configured the same way for every screen.
// Titles, help and quitting are owned by the app, not the list.
func newPickerList(items []list.Item, singular, plural string) list.Model {
	l := list.New(items, lineDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName(singular, plural)
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	l.Styles.NoItems = HelpStyle.MarginTop(0)
	return l
}
