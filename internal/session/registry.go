// Package session keeps live order-form sessions keyed by id and expires the
// ones the operator abandoned.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"atelier-desk/internal/model"
	"atelier-desk/internal/orderform"
)

type entry struct {
	form     *orderform.Form
	lastSeen time.Time
}

// Registry owns all open form sessions. Expired sessions are closed by a
// background sweep, which cancels their outstanding lookups.
type Registry struct {
	ttl    time.Duration
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry

	done chan struct{}
	once sync.Once
}

// NewRegistry creates a registry and starts its expiry sweep.
func NewRegistry(ttl time.Duration, logger zerolog.Logger) *Registry {
	r := &Registry{
		ttl:      ttl,
		logger:   logger.With().Str("component", "session-registry").Logger(),
		sessions: make(map[uuid.UUID]*entry),
		done:     make(chan struct{}),
	}
	go r.sweep()
	return r
}

// Open registers a form session and returns its id.
func (r *Registry) Open(form *orderform.Form) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	r.sessions[id] = &entry{form: form, lastSeen: time.Now()}
	count := len(r.sessions)
	r.mu.Unlock()

	r.logger.Debug().
		Str("session_id", id.String()).
		Int("open_sessions", count).
		Msg("form session opened")
	return id
}

// Get returns the live session for id, refreshing its expiry clock.
func (r *Registry) Get(id uuid.UUID) (*orderform.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	e.lastSeen = time.Now()
	return e.form, nil
}

// Close tears down one session. The draft is discarded; nothing is persisted.
func (r *Registry) Close(id uuid.UUID) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return model.ErrSessionNotFound
	}
	e.form.Close()
	r.logger.Debug().Str("session_id", id.String()).Msg("form session closed")
	return nil
}

// Shutdown closes every session and stops the sweep.
func (r *Registry) Shutdown() {
	r.once.Do(func() { close(r.done) })
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*entry)
	r.mu.Unlock()
	for _, e := range sessions {
		e.form.Close()
	}
}

func (r *Registry) sweep() {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.expire(time.Now())
		}
	}
}

func (r *Registry) expire(now time.Time) {
	var expired []*entry
	r.mu.Lock()
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.sessions, id)
			expired = append(expired, e)
			r.logger.Info().Str("session_id", id.String()).Msg("form session expired")
		}
	}
	r.mu.Unlock()
	for _, e := range expired {
		e.form.Close()
	}
}
