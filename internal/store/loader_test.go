package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_EmptyTriggerIssuesNothing(t *testing.T) {
	l := NewLoader[string](DiscardStale)

	_, ok := l.Begin("")

	assert.False(t, ok)
	assert.Equal(t, LoadIdle, l.Status())
	assert.Empty(t, l.Items())
}

func TestLoader_Success(t *testing.T) {
	l := NewLoader[string](DiscardStale)

	ticket, ok := l.Begin("2020")
	require.True(t, ok)
	assert.True(t, l.Loading())

	applied := l.Resolve(ticket, []string{"TESLA", "ACURA", "BMW"}, nil)

	assert.True(t, applied)
	assert.False(t, l.Loading())
	assert.Equal(t, LoadLoaded, l.Status())
	assert.Equal(t, []string{"TESLA", "ACURA", "BMW"}, l.Items(), "service order is preserved")
	assert.Equal(t, "2020", l.LoadedTrigger())
	assert.NoError(t, l.Err())
}

func TestLoader_FailureKeepsList(t *testing.T) {
	l := NewLoader[string](DiscardStale)

	t.Run("first load fails", func(t *testing.T) {
		ticket, _ := l.Begin("2020")
		applied := l.Resolve(ticket, nil, errors.New("timeout"))

		assert.True(t, applied)
		assert.False(t, l.Loading())
		assert.Equal(t, LoadFailed, l.Status())
		assert.EqualError(t, l.Err(), "timeout")
		assert.Empty(t, l.Items())
	})

	t.Run("later failure keeps previous list", func(t *testing.T) {
		ticket, _ := l.Begin("2020")
		l.Resolve(ticket, []string{"FORD"}, nil)

		ticket, _ = l.Begin("2021")
		l.Resolve(ticket, []string{"ignored"}, errors.New("502"))

		assert.Equal(t, LoadFailed, l.Status())
		assert.Equal(t, []string{"FORD"}, l.Items())
	})
}

func TestLoader_Release(t *testing.T) {
	t.Run("loaded list is discarded", func(t *testing.T) {
		l := NewLoader[string](DiscardStale)
		ticket, _ := l.Begin("Ford")
		l.Resolve(ticket, []string{"Mustang"}, nil)

		l.Release()

		assert.Equal(t, LoadIdle, l.Status())
		assert.Empty(t, l.Items())
		assert.Empty(t, l.LoadedTrigger())
	})

	t.Run("failure is cleared", func(t *testing.T) {
		l := NewLoader[string](DiscardStale)
		ticket, _ := l.Begin("Ford")
		l.Resolve(ticket, nil, errors.New("timeout"))

		l.Release()

		assert.Equal(t, LoadIdle, l.Status())
		assert.NoError(t, l.Err())
	})

	t.Run("in-flight request still resolves until superseded", func(t *testing.T) {
		l := NewLoader[string](DiscardStale)
		first, _ := l.Begin("Ford")
		l.Release()
		assert.True(t, l.Loading())

		second, _ := l.Begin("Ford")
		assert.False(t, l.Resolve(first, []string{"stale"}, nil))
		assert.True(t, l.Resolve(second, []string{"Mustang"}, nil))
		assert.Equal(t, []string{"Mustang"}, l.Items())
	})
}

// Two overlapping model fetches: Toyota is requested first, Honda second,
// and Toyota's response arrives last.
func TestLoader_OutOfOrderResponses(t *testing.T) {
	toyota := []string{"Camry", "Corolla"}
	honda := []string{"Civic", "Accord"}

	t.Run("last-wins keeps whichever resolves last", func(t *testing.T) {
		l := NewLoader[string](LastResolvedWins)
		toyotaTicket, _ := l.Begin("Toyota")
		hondaTicket, _ := l.Begin("Honda")

		assert.True(t, l.Resolve(hondaTicket, honda, nil))
		assert.True(t, l.Resolve(toyotaTicket, toyota, nil))

		// Known race: the stale Toyota list overwrites Honda
		assert.Equal(t, toyota, l.Items())
		assert.Equal(t, "Toyota", l.LoadedTrigger())
		assert.Equal(t, "Honda", l.Trigger())
	})

	t.Run("discard drops the stale response", func(t *testing.T) {
		l := NewLoader[string](DiscardStale)
		toyotaTicket, _ := l.Begin("Toyota")
		hondaTicket, _ := l.Begin("Honda")

		assert.True(t, l.Resolve(hondaTicket, honda, nil))
		assert.False(t, l.Resolve(toyotaTicket, toyota, nil))

		assert.Equal(t, honda, l.Items())
		assert.Equal(t, "Honda", l.LoadedTrigger())
	})

	t.Run("discard keeps loading until the current request resolves", func(t *testing.T) {
		l := NewLoader[string](DiscardStale)
		toyotaTicket, _ := l.Begin("Toyota")
		hondaTicket, _ := l.Begin("Honda")

		l.Resolve(toyotaTicket, toyota, nil)
		assert.True(t, l.Loading())
		assert.Empty(t, l.Items())

		l.Resolve(hondaTicket, honda, nil)
		assert.False(t, l.Loading())
	})
}

func TestLoader_ResetInvalidatesInFlight(t *testing.T) {
	for _, policy := range []StalePolicy{DiscardStale, LastResolvedWins} {
		t.Run(policy.String(), func(t *testing.T) {
			l := NewLoader[string](policy)
			old, _ := l.Begin("2020")

			l.Reset()
			fresh, _ := l.Begin("2021")

			assert.Equal(t, old.Generation, fresh.Generation, "generation restarts after reset")
			assert.False(t, l.Resolve(old, []string{"stale"}, nil))
			assert.True(t, l.Loading())

			assert.True(t, l.Resolve(fresh, []string{"fresh"}, nil))
			assert.Equal(t, []string{"fresh"}, l.Items())
		})
	}
}

func TestParseStalePolicy(t *testing.T) {
	p, err := ParseStalePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DiscardStale, p)

	p, err = ParseStalePolicy("last-wins")
	require.NoError(t, err)
	assert.Equal(t, LastResolvedWins, p)
	assert.Equal(t, "last-wins", p.String())

	_, err = ParseStalePolicy("newest")
	assert.ErrorIs(t, err, ErrUnknownStalePolicy)
}

func TestLoadStatusString(t *testing.T) {
	assert.Equal(t, "idle", LoadIdle.String())
	assert.Equal(t, "loading", LoadLoading.String())
	assert.Equal(t, "loaded", LoadLoaded.String())
	assert.Equal(t, "failed", LoadFailed.String())
}
