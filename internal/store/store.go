// Package store holds the in-memory session state of the selection flow.
// Flow owns the year/make/model selection and the screen history together so the
// two are always updated in the same step. Loader tracks the per-screen fetch state.
package store

import (
	"strconv"
	"strings"

	"github.com/h0rv/carpick/internal/domain"
	"github.com/h0rv/carpick/internal/logging"
	"go.uber.org/zap"
)

// Selection is the user's current year/make/model choice.
// Zero values mean "not selected".
type Selection struct {
	Year  int
	Make  string
	Model string
}

// HasYear reports whether a year has been chosen.
func (s Selection) HasYear() bool { return s.Year != 0 }

// HasMake reports whether a make has been chosen.
func (s Selection) HasMake() bool { return s.Make != "" }

// HasModel reports whether a model has been chosen.
func (s Selection) HasModel() bool { return s.Model != "" }

// IsEmpty reports whether nothing has been chosen.
func (s Selection) IsEmpty() bool {
	return !s.HasYear() && !s.HasMake() && !s.HasModel()
}

// String joins the chosen parts with single spaces, e.g. "2020 Ford Mustang".
func (s Selection) String() string {
	parts := make([]string, 0, 3)
	if s.HasYear() {
		parts = append(parts, strconv.Itoa(s.Year))
	}
	if s.HasMake() {
		parts = append(parts, s.Make)
	}
	if s.HasModel() {
		parts = append(parts, s.Model)
	}
	return strings.Join(parts, " ")
}

// Phase is the flow state derived from the active screen.
type Phase int

const (
	AwaitingYear Phase = iota
	AwaitingMake
	AwaitingModel
	ShowingSummary
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case AwaitingYear:
		return "AwaitingYear"
	case AwaitingMake:
		return "AwaitingMake"
	case AwaitingModel:
		return "AwaitingModel"
	case ShowingSummary:
		return "ShowingSummary"
	default:
		return "Unknown"
	}
}

// Flow is the selection flow controller. It is the only writer of the selection.
// Every transition updates the selection and the router in one call and returns
// the screen that should now be rendered.
type Flow struct {
	selection Selection
	router    *Router
}

// New creates an empty flow positioned on the Year screen.
func New() *Flow {
	return &Flow{router: NewRouter()}
}

// Selection returns a copy of the current selection.
func (f *Flow) Selection() Selection {
	return f.selection
}

// Active returns the screen currently shown.
func (f *Flow) Active() domain.Screen {
	return f.router.Active()
}

// Phase returns the flow phase matching the active screen.
func (f *Flow) Phase() Phase {
	switch f.router.Active() {
	case domain.ScreenMake:
		return AwaitingMake
	case domain.ScreenModel:
		return AwaitingModel
	case domain.ScreenSummary:
		return ShowingSummary
	default:
		return AwaitingYear
	}
}

// History returns the screen history, oldest first.
func (f *Flow) History() []domain.Screen {
	return f.router.History()
}

// SelectYear records the year and moves to the Make screen.
// Make and model are left as they are until Reset.
func (f *Flow) SelectYear(year int) domain.Screen {
	f.selection.Year = year
	return f.advance(domain.ScreenMake, zap.Int("year", year))
}

// SelectMake records the make and moves to the Model screen.
// The Make screen is only reachable with a year set, so no check is made here.
func (f *Flow) SelectMake(name string) domain.Screen {
	f.selection.Make = name
	return f.advance(domain.ScreenModel, zap.String("make", name))
}

// SelectModel records the model and moves to the Summary screen.
func (f *Flow) SelectModel(name string) domain.Screen {
	f.selection.Model = name
	return f.advance(domain.ScreenSummary, zap.String("model", name))
}

// Reset clears the selection and the history, returning to the Year screen.
func (f *Flow) Reset() domain.Screen {
	f.selection = Selection{}
	f.router.Reset()
	logging.Debug("selection reset")
	return f.router.Active()
}

// CanNavigate reports whether the header control for screen is enabled.
func (f *Flow) CanNavigate(screen domain.Screen) bool {
	switch screen {
	case domain.ScreenYear:
		return true
	case domain.ScreenMake:
		return f.selection.HasYear()
	case domain.ScreenModel:
		return f.selection.HasMake()
	case domain.ScreenSummary:
		return f.selection.HasModel()
	default:
		return false
	}
}

// NavigateTo jumps directly to screen without touching the selection.
// It returns false, and does nothing, when the screen is not reachable yet.
func (f *Flow) NavigateTo(screen domain.Screen) (domain.Screen, bool) {
	if !f.CanNavigate(screen) {
		return f.router.Active(), false
	}
	f.router.Push(screen)
	logging.Debug("navigate", zap.Stringer("screen", screen))
	return screen, true
}

// GoBack returns to the previous screen. It returns false on the Year root,
// where going back means closing the application.
func (f *Flow) GoBack() (domain.Screen, bool) {
	screen, ok := f.router.Back()
	if ok {
		logging.Debug("back", zap.Stringer("screen", screen))
	}
	return screen, ok
}

func (f *Flow) advance(next domain.Screen, field zap.Field) domain.Screen {
	f.router.Push(next)
	logging.Debug("selection changed",
		field,
		zap.String("selection", f.selection.String()),
		zap.Stringer("screen", next),
	)
	return next
}
