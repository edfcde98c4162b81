package booking

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrSessionNotFound = errors.New("booking session not found")
	ErrSessionExpired  = errors.New("booking session expired")
)

// Store holds live booking sessions in memory. Sessions idle past the TTL
// are reported expired and swept by the janitor.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if st.expired(s) {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, ErrSessionExpired
	}
	return s, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) expired(s *Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	// An in-flight submission keeps the session alive regardless of age.
	if s.inFlight {
		return false
	}
	return time.Since(s.UpdatedAt) > st.ttl
}

// Sweep drops every expired session and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if st.expired(s) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired sessions on the given interval until the
// context is cancelled.
func (st *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.Sweep()
			}
		}
	}()
}
