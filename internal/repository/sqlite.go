package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"careerguide/internal/models"
)

// SQLiteAccountStore backs the account contract with an embedded relational
// table. The table name is configurable so user and admin accounts can share
// one database file.
type SQLiteAccountStore struct {
	db    *sql.DB
	table string
}

// NewSQLiteAccountStore creates an account store over the given table.
func NewSQLiteAccountStore(db *sql.DB, table string) *SQLiteAccountStore {
	return &SQLiteAccountStore{db: db, table: table}
}

// Exists reports whether the username is taken.
func (s *SQLiteAccountStore) Exists(ctx context.Context, username string) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE username = ?`, s.table)
	var one int
	err := s.db.QueryRowContext(ctx, query, username).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the credential. The primary key makes check-then-insert
// atomic: a conflicting insert affects zero rows and maps to ErrDuplicateUser.
func (s *SQLiteAccountStore) Create(ctx context.Context, username, secret string) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (username, password_hash) VALUES (?, ?) ON CONFLICT(username) DO NOTHING`,
		s.table)
	res, err := s.db.ExecContext(ctx, query, username, secret)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDuplicateUser
	}
	return nil
}

// Get returns the stored secret.
func (s *SQLiteAccountStore) Get(ctx context.Context, username string) (string, error) {
	query := fmt.Sprintf(`SELECT password_hash FROM %s WHERE username = ?`, s.table)
	var secret string
	err := s.db.QueryRowContext(ctx, query, username).Scan(&secret)
	if err == sql.ErrNoRows {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return secret, nil
}

// Count returns the number of accounts.
func (s *SQLiteAccountStore) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, s.table)
	var count int
	err := s.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

// SQLiteProjectStore persists projects in the projects table.
type SQLiteProjectStore struct {
	db *sql.DB
}

// NewSQLiteProjectStore creates a project store.
func NewSQLiteProjectStore(db *sql.DB) *SQLiteProjectStore {
	return &SQLiteProjectStore{db: db}
}

// Put stores a project.
func (s *SQLiteProjectStore) Put(ctx context.Context, project models.Project) error {
	query := `INSERT INTO projects (id, title, problem_statement, solution_overview, image_ref, document_ref)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, project.ID, project.Title,
		project.ProblemStatement, project.SolutionOverview, project.ImageRef, project.DocumentRef)
	return err
}

// Get returns a project by id.
func (s *SQLiteProjectStore) Get(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT id, title, problem_statement, solution_overview, image_ref, document_ref
	          FROM projects WHERE id = ?`
	var p models.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.ProblemStatement, &p.SolutionOverview, &p.ImageRef, &p.DocumentRef)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects in insertion (rowid) order.
func (s *SQLiteProjectStore) List(ctx context.Context) ([]models.Project, error) {
	query := `SELECT id, title, problem_statement, solution_overview, image_ref, document_ref
	          FROM projects ORDER BY rowid`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.ProblemStatement,
			&p.SolutionOverview, &p.ImageRef, &p.DocumentRef); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Count returns the number of projects.
func (s *SQLiteProjectStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}

// SQLiteEnrollmentStore keeps one row per user; project ids are stored as a
// JSON array in a text column.
type SQLiteEnrollmentStore struct {
	db *sql.DB
}

// NewSQLiteEnrollmentStore creates an enrollment store.
func NewSQLiteEnrollmentStore(db *sql.DB) *SQLiteEnrollmentStore {
	return &SQLiteEnrollmentStore{db: db}
}

// Enroll appends the project id unless already present. Read-modify-write
// with last-write-wins, which is the discipline this store promises.
func (s *SQLiteEnrollmentStore) Enroll(ctx context.Context, username, projectID string) (bool, error) {
	record, err := s.Get(ctx, username)
	if err != nil {
		return false, err
	}
	for _, id := range record.ProjectIDs {
		if id == projectID {
			return false, nil
		}
	}
	ids := append(record.ProjectIDs, projectID)

	data, err := json.Marshal(ids)
	if err != nil {
		return false, err
	}
	query := `INSERT INTO enrollments (username, project_ids) VALUES (?, ?)
	          ON CONFLICT(username) DO UPDATE SET project_ids = excluded.project_ids`
	if _, err := s.db.ExecContext(ctx, query, username, string(data)); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the user's enrollment record; an empty record if none exists.
func (s *SQLiteEnrollmentStore) Get(ctx context.Context, username string) (*models.Enrollment, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT project_ids FROM enrollments WHERE username = ?`, username).Scan(&data)
	if err == sql.ErrNoRows {
		return &models.Enrollment{Username: username}, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, err
	}
	return &models.Enrollment{Username: username, ProjectIDs: ids}, nil
}

// All returns every enrollment record.
func (s *SQLiteEnrollmentStore) All(ctx context.Context) ([]models.Enrollment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, project_ids FROM enrollments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []models.Enrollment
	for rows.Next() {
		var username, data string
		if err := rows.Scan(&username, &data); err != nil {
			return nil, err
		}
		var ids []string
		if err := json.Unmarshal([]byte(data), &ids); err != nil {
			return nil, err
		}
		all = append(all, models.Enrollment{Username: username, ProjectIDs: ids})
	}
	return all, rows.Err()
}

// Count returns the number of enrollment records.
func (s *SQLiteEnrollmentStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM enrollments`).Scan(&count)
	return count, err
}
