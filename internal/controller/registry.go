package controller

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultIdleTTL is how long an untouched session keeps its view state.
const DefaultIdleTTL = 30 * time.Minute

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry holds one Controller per browser session in memory.
type Registry struct {
	searcher Searcher
	log      zerolog.Logger
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRegistry creates an empty registry. A non-positive ttl falls back to
// DefaultIdleTTL.
func NewRegistry(searcher Searcher, ttl time.Duration, log zerolog.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	return &Registry{
		searcher: searcher,
		log:      log,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the controller of a session, creating it on first use.
func (r *Registry) Get(id string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = &session{ctrl: New(r.searcher, r.log.With().Str("session_id", id).Logger())}
		r.sessions[id] = s
	}
	s.lastSeen = r.now()
	return s.ctrl
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.log.Debug().Int("removed", removed).Int("remaining", len(r.sessions)).Msg("swept idle sessions")
	}
	return removed
}
