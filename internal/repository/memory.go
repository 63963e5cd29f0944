package repository

import (
	"context"
	"sync"

	"careerguide/internal/models"
)

// MemoryAccountStore is a mutex-guarded map adapter. Development and tests.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]string
}

// NewMemoryAccountStore creates an empty in-memory account store.
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[string]string)}
}

// Exists reports whether the username is taken.
func (s *MemoryAccountStore) Exists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.accounts[username]
	return ok, nil
}

// Create stores the credential, rejecting duplicates. The map write happens
// under the same lock as the existence check.
func (s *MemoryAccountStore) Create(_ context.Context, username, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; ok {
		return ErrDuplicateUser
	}
	s.accounts[username] = secret
	return nil
}

// Get returns the stored secret.
func (s *MemoryAccountStore) Get(_ context.Context, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.accounts[username]
	if !ok {
		return "", ErrUserNotFound
	}
	return secret, nil
}

// Count returns the number of accounts.
func (s *MemoryAccountStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts), nil
}

// MemoryProjectStore keeps projects in insertion order.
type MemoryProjectStore struct {
	mu       sync.RWMutex
	order    []string
	projects map[string]models.Project
}

// NewMemoryProjectStore creates an empty in-memory project store.
func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{projects: make(map[string]models.Project)}
}

// Put stores a project.
func (s *MemoryProjectStore) Put(_ context.Context, project models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[project.ID]; !ok {
		s.order = append(s.order, project.ID)
	}
	s.projects[project.ID] = project
	return nil
}

// Get returns a project by id.
func (s *MemoryProjectStore) Get(_ context.Context, id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, ErrProjectNotFound
	}
	return &project, nil
}

// List returns all projects in insertion order.
func (s *MemoryProjectStore) List(_ context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.order))
	for _, id := range s.order {
		projects = append(projects, s.projects[id])
	}
	return projects, nil
}

// Count returns the number of projects.
func (s *MemoryProjectStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.projects), nil
}

// MemoryEnrollmentStore keeps one enrollment record per user.
type MemoryEnrollmentStore struct {
	mu          sync.RWMutex
	enrollments map[string][]string
}

// NewMemoryEnrollmentStore creates an empty in-memory enrollment store.
func NewMemoryEnrollmentStore() *MemoryEnrollmentStore {
	return &MemoryEnrollmentStore{enrollments: make(map[string][]string)}
}

// Enroll appends the project id unless already present.
func (s *MemoryEnrollmentStore) Enroll(_ context.Context, username, projectID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.enrollments[username]
	for _, id := range ids {
		if id == projectID {
			return false, nil
		}
	}
	s.enrollments[username] = append(ids, projectID)
	return true, nil
}

// Get returns the user's enrollment record; an empty record if none exists.
func (s *MemoryEnrollmentStore) Get(_ context.Context, username string) (*models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.enrollments[username]
	copied := make([]string, len(ids))
	copy(copied, ids)
	return &models.Enrollment{Username: username, ProjectIDs: copied}, nil
}

// All returns every enrollment record.
func (s *MemoryEnrollmentStore) All(_ context.Context) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Enrollment, 0, len(s.enrollments))
	for username, ids := range s.enrollments {
		copied := make([]string, len(ids))
		copy(copied, ids)
		all = append(all, models.Enrollment{Username: username, ProjectIDs: copied})
	}
	return all, nil
}

// Count returns the number of users with at least one enrollment record.
func (s *MemoryEnrollmentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.enrollments), nil
}
