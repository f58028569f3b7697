// Package tui provides the Bubble Tea models for the selection flow.
package tui

import (
	"github.com/h0rv/carpick/internal/domain"
	"github.com/h0rv/carpick/internal/store"
)

// YearSelectedMsg is emitted when the user chooses a year.
type YearSelectedMsg struct {
	Year int
}

// MakeSelectedMsg is emitted when the user chooses a make.
type MakeSelectedMsg struct {
	Make string
}

// ModelSelectedMsg is emitted when the user chooses a model.
type ModelSelectedMsg struct {
	Model string
}

// ResetMsg is emitted when the user resets the selection from the summary.
type ResetMsg struct{}

// catalogLoadedMsg carries the outcome of a make or model lookup back to the
// screen that issued it.
type catalogLoadedMsg struct {
	screen  domain.Screen
	ticket  store.Ticket
	entries []catalogEntry
	err     error
}

// openResultMsg reports the outcome of opening the vehicle page in a browser.
type openResultMsg struct {
	url string
	err error
}
