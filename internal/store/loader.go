package store

import (
	"errors"
	"fmt"
)

// ErrUnknownStalePolicy indicates an unrecognized stale policy name.
var ErrUnknownStalePolicy = errors.New("unknown stale response policy")

// StalePolicy decides what happens to a response that arrives after a newer
// request was issued by the same screen.
type StalePolicy int

const (
	// DiscardStale drops responses older than the most recent request.
	DiscardStale StalePolicy = iota
	// LastResolvedWins applies every response as it arrives, so the last one to
	// resolve overwrites the list even when it belongs to an older trigger.
	LastResolvedWins
)

// Policy names accepted in config and flags.
const (
	PolicyNameDiscard  = "discard"
	PolicyNameLastWins = "last-wins"
)

// String returns the config name of the policy.
func (p StalePolicy) String() string {
	if p == LastResolvedWins {
		return PolicyNameLastWins
	}
	return PolicyNameDiscard
}

// ParseStalePolicy parses a policy name. The empty string selects DiscardStale.
func ParseStalePolicy(name string) (StalePolicy, error) {
	switch name {
	case "", PolicyNameDiscard:
		return DiscardStale, nil
	case PolicyNameLastWins:
		return LastResolvedWins, nil
	default:
		return DiscardStale, fmt.Errorf("%w: %q", ErrUnknownStalePolicy, name)
	}
}

// LoadStatus is the state of a screen's list.
type LoadStatus int

const (
	LoadIdle LoadStatus = iota
	LoadLoading
	LoadLoaded
	LoadFailed
)

// String returns the status name.
func (s LoadStatus) String() string {
	switch s {
	case LoadLoading:
		return "loading"
	case LoadLoaded:
		return "loaded"
	case LoadFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Ticket identifies one outbound request. It is handed back to Resolve with the result.
type Ticket struct {
	Epoch      uint64
	Generation uint64
	Trigger    string
}

// Loader holds the list shown by one screen and the state of the request feeding it.
// It is not safe for concurrent use; all calls happen on the UI update loop.
type Loader[T any] struct {
	policy     StalePolicy
	epoch      uint64
	generation uint64
	trigger    string // trigger of the most recent Begin
	loaded     string // trigger whose response filled items
	status     LoadStatus
	items      []T
	err        error
}

// NewLoader creates an idle loader with an empty list.
func NewLoader[T any](policy StalePolicy) *Loader[T] {
	return &Loader[T]{policy: policy, items: []T{}}
}

// Policy returns the loader's stale response policy.
func (l *Loader[T]) Policy() StalePolicy {
	return l.policy
}

// Begin starts a request for trigger and marks the loader as loading.
// An empty trigger issues nothing and returns false.
func (l *Loader[T]) Begin(trigger string) (Ticket, bool) {
	if trigger == "" {
		return Ticket{}, false
	}
	l.generation++
	l.trigger = trigger
	l.status = LoadLoading
	return Ticket{Epoch: l.epoch, Generation: l.generation, Trigger: trigger}, true
}

// Resolve applies the outcome of the request identified by t.
// On success the list is replaced; on failure it is left unchanged and the
// status becomes LoadFailed. It returns false when the response was discarded.
func (l *Loader[T]) Resolve(t Ticket, items []T, err error) bool {
	if t.Epoch != l.epoch {
		return false
	}
	if l.policy == DiscardStale && t.Generation != l.generation {
		return false
	}

	if err != nil {
		l.status = LoadFailed
		l.err = err
		return true
	}

	if items == nil {
		items = []T{}
	}
	l.items = items
	l.loaded = t.Trigger
	l.status = LoadLoaded
	l.err = nil
	return true
}

// Release discards the list when its screen is left. A request still in flight
// is not invalidated; the next Begin supersedes it.
func (l *Loader[T]) Release() {
	l.items = []T{}
	l.loaded = ""
	l.err = nil
	if l.status != LoadLoading {
		l.status = LoadIdle
	}
}

// Reset discards the list and invalidates every request issued so far.
func (l *Loader[T]) Reset() {
	l.epoch++
	l.generation = 0
	l.trigger = ""
	l.loaded = ""
	l.status = LoadIdle
	l.items = []T{}
	l.err = nil
}

// Items returns a copy of the current list in service order.
func (l *Loader[T]) Items() []T {
	items := make([]T, len(l.items))
	copy(items, l.items)
	return items
}

// Status returns the current load status.
func (l *Loader[T]) Status() LoadStatus {
	return l.status
}

// Loading reports whether a request is outstanding.
func (l *Loader[T]) Loading() bool {
	return l.status == LoadLoading
}

// Err returns the last failure, or nil unless the status is LoadFailed.
func (l *Loader[T]) Err() error {
	if l.status != LoadFailed {
		return nil
	}
	return l.err
}

// Trigger returns the trigger of the most recent request.
func (l *Loader[T]) Trigger() string {
	return l.trigger
}

// LoadedTrigger returns the trigger whose response is currently in the list.
func (l *Loader[T]) LoadedTrigger() string {
	return l.loaded
}
