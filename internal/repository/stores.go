// Package repository defines the storage contracts for accounts, projects
// and enrollments, with interchangeable in-memory, embedded SQLite and
// DynamoDB adapters behind them.
package repository

import (
	"context"
	"errors"

	"careerguide/internal/models"
)

var (
	// ErrDuplicateUser is returned when creating a username that is taken.
	// The check-then-insert must be atomic inside each adapter.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrUserNotFound is returned for lookups of unknown usernames.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound is returned for lookups of unknown project ids.
	ErrProjectNotFound = errors.New("project not found")
)

// AccountStore holds credential material keyed by unique username. Secret is
// opaque to the store; hashing happens in the auth service.
type AccountStore interface {
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, username, secret string) error
	Get(ctx context.Context, username string) (secret string, err error)
	Count(ctx context.Context) (int, error)
}

// ProjectStore holds admin-created project listings. Projects are created
// and read, never updated or deleted.
type ProjectStore interface {
	Put(ctx context.Context, project models.Project) error
	Get(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Count(ctx context.Context) (int, error)
}

// EnrollmentStore holds one record per user with the ordered set of project
// ids they joined. Enroll appends only when the id is not already present.
type EnrollmentStore interface {
	Enroll(ctx context.Context, username, projectID string) (added bool, err error)
	Get(ctx context.Context, username string) (*models.Enrollment, error)
	All(ctx context.Context) ([]models.Enrollment, error)
	Count(ctx context.Context) (int, error)
}
