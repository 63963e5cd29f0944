package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"careerguide/internal/models"
	"careerguide/internal/notify"
	"careerguide/internal/repository"
)

// ErrMissingTitle is returned when creating a project without a title.
var ErrMissingTitle = errors.New("project title is required")

// ProjectService handles project creation, listing and enrollments.
type ProjectService struct {
	projects    repository.ProjectStore
	enrollments repository.EnrollmentStore
	notifier    notify.Notifier
}

// NewProjectService creates a new project service.
func NewProjectService(projects repository.ProjectStore, enrollments repository.EnrollmentStore, notifier notify.Notifier) *ProjectService {
	return &ProjectService{projects: projects, enrollments: enrollments, notifier: notifier}
}

// CreateProjectInput carries the admin-supplied project fields. Image and
// document refs point at already-saved uploads.
type CreateProjectInput struct {
	Title            string
	ProblemStatement string
	SolutionOverview string
	ImageRef         string
	DocumentRef      string
}

// Create stores a new project under a fresh id.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if input.Title == "" {
		return nil, ErrMissingTitle
	}

	project := models.Project{
		ID:               uuid.NewString(),
		Title:            input.Title,
		ProblemStatement: input.ProblemStatement,
		SolutionOverview: input.SolutionOverview,
		ImageRef:         input.ImageRef,
		DocumentRef:      input.DocumentRef,
	}
	if err := s.projects.Put(ctx, project); err != nil {
		return nil, err
	}

	s.publish(ctx, "New Project", project.Title)
	return &project, nil
}

// List returns all projects.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

// Enroll joins a user to a project. Enrolling twice is a no-op. Project
// existence is not checked here; unknown ids are skipped at read time.
func (s *ProjectService) Enroll(ctx context.Context, username, projectID string) error {
	added, err := s.enrollments.Enroll(ctx, username, projectID)
	if err != nil {
		return err
	}
	if added {
		s.publish(ctx, "Project Enrollment", fmt.Sprintf("%s enrolled", username))
	}
	return nil
}

// ProjectsFor resolves a user's enrollments to project records. Dangling
// project ids are skipped, not pruned.
func (s *ProjectService) ProjectsFor(ctx context.Context, username string) ([]models.Project, error) {
	record, err := s.enrollments.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(record.ProjectIDs))
	for _, id := range record.ProjectIDs {
		project, err := s.projects.Get(ctx, id)
		if errors.Is(err, repository.ErrProjectNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, nil
}

// EnrollmentsFor returns the raw enrollment record for a user.
func (s *ProjectService) EnrollmentsFor(ctx context.Context, username string) (*models.Enrollment, error) {
	return s.enrollments.Get(ctx, username)
}

// Overview returns per-user enrollment listings for the admin dashboard.
func (s *ProjectService) Overview(ctx context.Context) ([]models.Enrollment, error) {
	return s.enrollments.All(ctx)
}

// ProjectCount returns the number of projects.
func (s *ProjectService) ProjectCount(ctx context.Context) (int, error) {
	return s.projects.Count(ctx)
}

// EnrollmentCount returns the number of users with enrollments.
func (s *ProjectService) EnrollmentCount(ctx context.Context) (int, error) {
	return s.enrollments.Count(ctx)
}

func (s *ProjectService) publish(ctx context.Context, subject, message string) {
	if err := s.notifier.Publish(ctx, subject, message); err != nil {
		log.Printf("Failed to publish notification %q: %v", subject, err)
	}
}
