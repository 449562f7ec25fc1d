package landing

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Session binds a visitor's cookie to their page.
type Session struct {
	ID   string
	Page *Page

	limiter  *rate.Limiter
	lastSeen time.Time
}

// Store keeps one page per visitor in memory. Nothing survives a restart.
type Store struct {
	ttl     time.Duration
	newPage func() *Page
	limit   RateLimit
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store. newPage builds the page for every new
// visitor; sessions idle for longer than ttl are dropped by Sweep.
func NewStore(ttl time.Duration, limit RateLimit, newPage func() *Page) *Store {
	return &Store{
		ttl:      ttl,
		newPage:  newPage,
		limit:    limit,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns the session for id, creating a new one under a fresh id
// when id is empty or unknown. created reports the latter.
func (s *Store) Resolve(id string) (sess *Session, created bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok && id != "" {
		sess.lastSeen = now
		return sess, false
	}

	sess = &Session{
		ID:       uuid.NewString(),
		Page:     s.newPage(),
		limiter:  s.limit.newLimiter(),
		lastSeen: now,
	}
	s.sessions[sess.ID] = sess
	return sess, true
}

// Get returns the session for id without creating one.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = s.now()
	}
	return sess, ok
}

// Sweep drops every session not seen within the TTL before now and returns
// how many were dropped. Pending form timers on a dropped page still fire.
func (s *Store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
