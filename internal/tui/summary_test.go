package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/carpick/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryModel_URL(t *testing.T) {
	tests := []struct {
		name string
		sel  store.Selection
		want string
	}{
		{
			name: "plain names",
			sel:  store.Selection{Year: 2020, Make: "Ford", Model: "Mustang"},
			want: "https://www.nhtsa.gov/vehicle/2020/Ford/Mustang",
		},
		{
			name: "names are path escaped",
			sel:  store.Selection{Year: 2019, Make: "LAND ROVER", Model: "Range Rover/Sport"},
			want: "https://www.nhtsa.gov/vehicle/2019/LAND%20ROVER/Range%20Rover%2FSport",
		},
		{
			name: "incomplete selection",
			sel:  store.Selection{Year: 2019, Make: "Ford"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSummaryModel().WithSelection(tt.sel)
			assert.Equal(t, tt.want, m.URL())
		})
	}
}

func TestSummaryModel_ResetKeys(t *testing.T) {
	m := NewSummaryModel().WithSelection(store.Selection{Year: 2020, Make: "Ford", Model: "Mustang"})

	for _, k := range []tea.KeyMsg{keyEnter, runeKey("r")} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd, k.String())
		assert.Equal(t, ResetMsg{}, cmd())
	}
}

func TestSummaryModel_Open(t *testing.T) {
	var opened []string
	m := NewSummaryModel().WithSelection(store.Selection{Year: 2020, Make: "Ford", Model: "Mustang"})
	m.open = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	m, cmd := m.Update(runeKey("o"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, []string{"https://www.nhtsa.gov/vehicle/2020/Ford/Mustang"}, opened)

	m, _ = m.Update(msg)
	assert.Contains(t, m.View(), "Opened https://www.nhtsa.gov/vehicle/2020/Ford/Mustang")
}

func TestSummaryModel_OpenFailure(t *testing.T) {
	m := NewSummaryModel().WithSelection(store.Selection{Year: 2020, Make: "Ford", Model: "Mustang"})
	m.open = func(string) error { return errors.New("no browser") }

	m, cmd := m.Update(runeKey("o"))
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	assert.Contains(t, m.View(), "Couldn't open")
	assert.Contains(t, m.View(), "2020 Ford Mustang")
}

func TestSummaryModel_View(t *testing.T) {
	m := NewSummaryModel().WithSelection(store.Selection{Year: 2020, Make: "Ford", Model: "Mustang"})

	view := m.View()
	assert.Contains(t, view, "Car info :")
	assert.Contains(t, view, "2020 Ford Mustang")
}
