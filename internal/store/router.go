package store

import "github.com/h0rv/carpick/internal/domain"

// Router is a last-in-first-out history of visited screens.
// The root is always the Year screen.
type Router struct {
	history []domain.Screen
}

// NewRouter creates a router positioned on the Year screen.
func NewRouter() *Router {
	return &Router{history: []domain.Screen{domain.ScreenYear}}
}

// Active returns the screen on top of the history stack.
func (r *Router) Active() domain.Screen {
	return r.history[len(r.history)-1]
}

// Push makes screen the active screen. Pushing the active screen again is allowed
// and adds a new history entry, matching header jumps.
func (r *Router) Push(screen domain.Screen) {
	r.history = append(r.history, screen)
}

// Back pops the active screen and returns the one below it.
// At the root it returns false and leaves the history untouched.
func (r *Router) Back() (domain.Screen, bool) {
	if len(r.history) <= 1 {
		return r.Active(), false
	}
	r.history = r.history[:len(r.history)-1]
	return r.Active(), true
}

// Depth returns the number of entries in the history.
func (r *Router) Depth() int {
	return len(r.history)
}

// History returns a copy of the history, oldest first.
func (r *Router) History() []domain.Screen {
	h := make([]domain.Screen, len(r.history))
	copy(h, r.history)
	return h
}

// Reset drops all history and returns to the Year screen.
func (r *Router) Reset() {
	r.history = []domain.Screen{domain.ScreenYear}
}
