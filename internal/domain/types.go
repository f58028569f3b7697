// Package domain defines the normalized vehicle types used across carpick.
// These types are independent of the vPIC API response structure.
package domain

// Make represents a vehicle manufacturer brand returned by vPIC.
type Make struct {
	ID   int    // vPIC MakeId
	Name string // Display name (e.g., "FORD")
}

// Model represents a vehicle model belonging to a make.
type Model struct {
	ID       int    // vPIC Model_ID
	Name     string // Display name (e.g., "Mustang")
	MakeID   int    // vPIC Make_ID of the owning make
	MakeName string // vPIC Make_Name of the owning make
}

// Screen identifies one step of the selection flow.
type Screen int

const (
	ScreenYear Screen = iota
	ScreenMake
	ScreenModel
	ScreenSummary
)

// String returns the screen's short name as shown in the header tabs.
func (s Screen) String() string {
	switch s {
	case ScreenYear:
		return "Year"
	case ScreenMake:
		return "Make"
	case ScreenModel:
		return "Model"
	case ScreenSummary:
		return "Summary"
	default:
		return "Unknown"
	}
}

// Title returns the header title for the screen. Summary has none.
func (s Screen) Title() string {
	switch s {
	case ScreenYear, ScreenMake, ScreenModel:
		return "Choose " + s.String()
	default:
		return ""
	}
}

// Default year window offered on the Year screen.
const (
	DefaultLatestYear = 2024
	DefaultYearCount  = 30
)

// YearRange is a fixed window of model years ending at Latest.
type YearRange struct {
	Latest int // Most recent year offered
	Count  int // Number of years in the window
}

// DefaultYearRange returns the 1995-2024 window.
func DefaultYearRange() YearRange {
	return YearRange{Latest: DefaultLatestYear, Count: DefaultYearCount}
}

// Earliest returns the oldest year in the range.
func (r YearRange) Earliest() int {
	return r.Latest - r.Count + 1
}

// Years returns every year in the range, most recent first.
func (r YearRange) Years() []int {
	if r.Count <= 0 {
		return []int{}
	}
	years := make([]int, r.Count)
	for i := range years {
		years[i] = r.Latest - i
	}
	return years
}

// Contains reports whether y falls inside the range.
func (r YearRange) Contains(y int) bool {
	return r.Count > 0 && y <= r.Latest && y >= r.Earliest()
}
