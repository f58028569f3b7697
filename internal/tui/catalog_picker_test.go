package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/carpick/internal/domain"
	"github.com/h0rv/carpick/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadedMsg returns the lookup result carried by cmd.
func loadedMsg(t *testing.T, cmd tea.Cmd) catalogLoadedMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if loaded, ok := msg.(catalogLoadedMsg); ok {
			return loaded
		}
	}
	t.Fatal("no catalogLoadedMsg produced")
	return catalogLoadedMsg{}
}

func TestCatalogPicker_ActivateWithoutTrigger(t *testing.T) {
	src := newFakeSource()
	m := NewMakePickerModel(src, context.Background(), store.DiscardStale)

	m, cmd := m.Activate("")

	assert.Nil(t, cmd)
	assert.Equal(t, store.LoadIdle, m.Loader().Status())
	assert.Zero(t, src.makesCalls)
}

func TestCatalogPicker_LoadsInServiceOrder(t *testing.T) {
	src := newFakeSource()
	m := NewMakePickerModel(src, context.Background(), store.DiscardStale)

	m, cmd := m.Activate("2020")
	require.NotNil(t, cmd)
	assert.True(t, m.Loader().Loading())
	assert.Contains(t, m.View(), "Loading makes...")

	m, _ = m.Update(loadedMsg(t, cmd))

	assert.Equal(t, []catalogEntry{
		{ID: 474, Name: "Honda"},
		{ID: 448, Name: "Toyota"},
		{ID: 460, Name: "Ford"},
	}, m.Loader().Items())
	assert.Contains(t, m.View(), "Honda")
}

func TestCatalogPicker_IgnoresOtherScreen(t *testing.T) {
	src := newFakeSource()
	makes := NewMakePickerModel(src, context.Background(), store.DiscardStale)
	models := NewModelPickerModel(src, context.Background(), store.DiscardStale)

	models, cmd := models.Activate("Ford")
	msg := loadedMsg(t, cmd)

	makes, _ = makes.Update(msg)
	assert.Equal(t, store.LoadIdle, makes.Loader().Status())

	models, _ = models.Update(msg)
	assert.Equal(t, store.LoadLoaded, models.Loader().Status())
	assert.Equal(t, []string{"Ford"}, src.modelCalls)
}

func TestCatalogPicker_FailureKeepsList(t *testing.T) {
	src := newFakeSource()
	m := NewModelPickerModel(src, context.Background(), store.DiscardStale)

	m, cmd := m.Activate("Ford")
	m, _ = m.Update(loadedMsg(t, cmd))
	require.Len(t, m.Loader().Items(), 2)

	src.modelsErr = errors.New("status 503")
	m, cmd = m.Refresh()
	m, _ = m.Update(loadedMsg(t, cmd))

	assert.Equal(t, store.LoadFailed, m.Loader().Status())
	assert.Len(t, m.Loader().Items(), 2)
	view := m.View()
	assert.Contains(t, view, "Mustang")
	assert.Contains(t, view, "Couldn't load models: status 503")

	// A failed screen fetches again on the next activation
	src.modelsErr = nil
	_, cmd = m.Activate("Ford")
	assert.NotNil(t, cmd)
}

func TestCatalogPicker_SelectEmitsName(t *testing.T) {
	src := newFakeSource()
	m := NewModelPickerModel(src, context.Background(), store.DiscardStale)

	m, cmd := m.Activate("Toyota")
	m, _ = m.Update(loadedMsg(t, cmd))

	m, _ = m.Update(keyDown)
	_, cmd = m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, ModelSelectedMsg{Model: "Corolla"}, cmd())
}

func TestCatalogPicker_KeysIgnoredWhileLoading(t *testing.T) {
	m := NewMakePickerModel(newFakeSource(), context.Background(), store.DiscardStale)

	m, _ = m.Activate("2020")
	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
}

func TestCatalogPicker_Reset(t *testing.T) {
	src := newFakeSource()
	m := NewMakePickerModel(src, context.Background(), store.DiscardStale)

	m, cmd := m.Activate("2020")
	m, _ = m.Update(loadedMsg(t, cmd))
	m = m.Reset()

	assert.Equal(t, store.LoadIdle, m.Loader().Status())
	assert.Empty(t, m.Loader().Items())
	assert.Contains(t, m.View(), "No makes")

	// Same trigger is fetched again after a reset
	_, cmd = m.Activate("2020")
	assert.NotNil(t, cmd)
}

func TestCatalogPicker_SameTriggerFetchesAgain(t *testing.T) {
	src := newFakeSource()
	m := NewModelPickerModel(src, context.Background(), store.DiscardStale)

	m, cmd := m.Activate("Ford")
	m, _ = m.Update(loadedMsg(t, cmd))
	m = m.Leave()

	m, cmd = m.Activate("Ford")
	require.NotNil(t, cmd)
	assert.True(t, m.Loader().Loading())

	m, _ = m.Update(loadedMsg(t, cmd))
	assert.Equal(t, []string{"Ford", "Ford"}, src.modelCalls)
	assert.Equal(t, store.LoadLoaded, m.Loader().Status())
	assert.Equal(t, "Ford", m.Loader().LoadedTrigger())
}

func TestCatalogPicker_Leave(t *testing.T) {
	src := newFakeSource()
	m := NewMakePickerModel(src, context.Background(), store.DiscardStale)

	m, cmd := m.Activate("2020")
	m, _ = m.Update(loadedMsg(t, cmd))
	require.Len(t, m.Loader().Items(), 3)

	m = m.Leave()

	assert.Equal(t, store.LoadIdle, m.Loader().Status())
	assert.Empty(t, m.Loader().Items())
	assert.Empty(t, m.list.Items())
}

func TestNewAppModel_DefaultYears(t *testing.T) {
	m := NewAppModel(newFakeSource(), store.New(), context.Background(), Options{})

	assert.Len(t, m.years.list.Items(), domain.DefaultYearCount)
}
