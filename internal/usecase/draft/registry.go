package draft

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
)

// Session is one open draft. Its mutex serialises every operation on the controller.
type Session struct {
	ID       string
	Identity entity.Identity

	mu       sync.Mutex
	ctrl     *Controller
	lastUsed time.Time
}

// Registry holds open draft sessions in memory and expires idle ones.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      service.Clock
}

// NewRegistry creates a Registry whose sessions expire after ttl of inactivity.
func NewRegistry(ttl time.Duration, now service.Clock) *Registry {
	if now == nil {
		now = service.SystemClock
	}

	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

// Open registers a controller and returns its session id.
func (r *Registry) Open(ctrl *Controller) string {
	session := &Session{
		ID:       uuid.NewString(),
		Identity: ctrl.Identity(),
		ctrl:     ctrl,
		lastUsed: r.now(),
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session.ID
}

// With runs fn on the session's controller while holding the session lock.
// Sessions owned by another identity are reported as not found.
func (r *Registry) With(id string, identity entity.Identity, fn func(*Controller) error) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok || session.Identity != identity {
		return domainerrors.ErrDraftNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastUsed = r.now()

	return fn(session.ctrl)
}

// Close removes a session. It reports whether the session existed for identity.
func (r *Registry) Close(id string, identity entity.Identity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok || session.Identity != identity {
		return false
	}
	delete(r.sessions, id)

	return true
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns how many were dropped.
// A session whose lock is held is in use and is skipped.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, session := range r.sessions {
		if !session.mu.TryLock() {
			continue
		}
		idle := session.lastUsed.Before(cutoff)
		session.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			dropped++
		}
	}

	return dropped
}

// Run sweeps on every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
