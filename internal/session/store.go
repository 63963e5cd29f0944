// Package session tracks per-visitor transient state across requests.
package session

import (
	"context"
	"sync"

	"careerguide/internal/models"
)

// Store persists sessions keyed by session id. A missing id yields a fresh
// zero session rather than an error; only infrastructure failures surface.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in a mutex-guarded map. Used in development
// and tests; single-process only.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session)}
}

// Get returns the stored session, or a fresh one carrying the id.
func (s *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[id]; ok {
		copied := sess
		return &copied, nil
	}
	return &models.Session{ID: id}, nil
}

// Save stores the session under its id.
func (s *MemoryStore) Save(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = *sess
	return nil
}

// Delete removes the session. Deleting an unknown id is a no-op.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
