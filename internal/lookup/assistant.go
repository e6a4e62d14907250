// Package lookup implements debounced search-as-you-type assistants with
// cancel-to-latest semantics: each new input supersedes the previous one,
// and results of a superseded search are never applied.
package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SearchFunc performs one search. The context is cancelled when the query is
// superseded or the assistant closes.
type SearchFunc[T any] func(ctx context.Context, query string) ([]T, error)

// ApplyFunc receives the results of the latest completed search. A nil slice
// means the suggestion list should be cleared.
type ApplyFunc[T any] func(query string, results []T)

// Config holds the tuning knobs of an assistant.
type Config struct {
	// MinLength is the shortest query that triggers a search. Shorter input
	// clears the suggestion list without a network call.
	MinLength int

	// Debounce is how long input must stay unchanged before a search fires.
	Debounce time.Duration
}

// Assistant debounces free-text input into at most one in-flight search.
type Assistant[T any] struct {
	cfg    Config
	search SearchFunc[T]
	apply  ApplyFunc[T]
	logger zerolog.Logger

	mu       sync.Mutex
	gen      uint64
	last     string
	hasLast  bool
	timer    *time.Timer
	inflight context.CancelFunc
	closed   bool
}

// NewAssistant creates an assistant. apply is invoked with the assistant's
// internal lock held, so applies are totally ordered with Input and Close and
// a superseded search can never land after the input that superseded it.
// apply must not call back into the assistant.
func NewAssistant[T any](cfg Config, search SearchFunc[T], apply ApplyFunc[T], logger zerolog.Logger) *Assistant[T] {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 300 * time.Millisecond
	}
	return &Assistant[T]{
		cfg:    cfg,
		search: search,
		apply:  apply,
		logger: logger.With().Str("component", "lookup-assistant").Logger(),
	}
}

// Input feeds one keystroke's worth of text into the assistant.
func (a *Assistant[T]) Input(query string) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}

	if len(query) < a.cfg.MinLength {
		a.invalidateLocked()
		a.apply(query, nil)
		a.mu.Unlock()
		return
	}

	// Duplicate consecutive query: keep whatever is scheduled or in flight.
	if a.hasLast && query == a.last {
		a.mu.Unlock()
		return
	}

	a.invalidateLocked()
	a.last = query
	a.hasLast = true
	gen := a.gen
	a.timer = time.AfterFunc(a.cfg.Debounce, func() {
		a.fire(gen, query)
	})
	a.mu.Unlock()
}

// Close cancels the pending timer and any in-flight search. Results arriving
// after Close are discarded.
func (a *Assistant[T]) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	a.invalidateLocked()
}

// invalidateLocked supersedes anything scheduled or in flight.
func (a *Assistant[T]) invalidateLocked() {
	a.gen++
	a.last = ""
	a.hasLast = false
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.inflight != nil {
		a.inflight()
		a.inflight = nil
	}
}

func (a *Assistant[T]) fire(gen uint64, query string) {
	a.mu.Lock()
	if a.closed || gen != a.gen {
		a.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.inflight = cancel
	a.mu.Unlock()

	results, err := a.search(ctx, query)
	if err != nil {
		// Lookup failures degrade to an empty suggestion list.
		a.logger.Debug().Err(err).Str("query", query).Msg("lookup search failed")
		results = nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	defer cancel()
	// Re-checked in the same critical section as the apply: an input that
	// supersedes this generation either ran before (and we discard) or is
	// blocked until the results are in.
	if a.closed || gen != a.gen {
		return
	}
	a.inflight = nil
	a.apply(query, results)
}
