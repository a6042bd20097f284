package interview

import (
	"sort"
	"sync"
	"time"
)

// Store abstracts session persistence. Implementations must be safe for
// concurrent use and must return ErrSessionNotFound for unknown ids.
type Store interface {
	Get(id string) (*Session, error)
	Put(session *Session) error
	List() []*Session
	Delete(id string) error
}

// MemoryStore keeps sessions in process memory. Reads and writes exchange
// deep clones, so a session obtained from the store is always a private copy.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// Get returns a copy of the stored session.
func (s *MemoryStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

// Put stores a copy of the session, replacing any previous state.
func (s *MemoryStore) Put(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session.Clone()
	return nil
}

// List returns copies of all sessions, oldest first.
func (s *MemoryStore) List() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Delete removes a session.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// PruneExpired removes sessions created before the cutoff and returns how
// many were dropped. The server runs this on a timer so abandoned interviews
// do not accumulate.
func (s *MemoryStore) PruneExpired(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, session := range s.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}
