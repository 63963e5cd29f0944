package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerguide/internal/service"
)

// File types accepted for project images and documents.
var allowedUploadExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

// HandleProjectList handles GET /projects
func (h *Handlers) HandleProjectList(c *fiber.Ctx) error {
	projects, err := h.projects.List(c.Context())
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load projects",
		})
	}

	return c.JSON(fiber.Map{
		"projects": projects,
	})
}

// HandleProjectCreate handles POST /admin/projects
// Multipart form: title, problem_statement, solution_overview plus optional
// image and document files.
func (h *Handlers) HandleProjectCreate(c *fiber.Ctx) error {
	input := service.CreateProjectInput{
		Title:            c.FormValue("title"),
		ProblemStatement: c.FormValue("problem_statement"),
		SolutionOverview: c.FormValue("solution_overview"),
	}

	imageRef, err := h.saveUpload(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported image file type",
		})
	}
	documentRef, err := h.saveUpload(c, "document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported document file type",
		})
	}
	input.ImageRef = imageRef
	input.DocumentRef = documentRef

	project, err := h.projects.Create(c.Context(), input)
	switch {
	case errors.Is(err, service.ErrMissingTitle):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Project title is required",
		})
	case err != nil:
		log.Printf("Error creating project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// HandleProjectEnroll handles POST /projects/:id/enroll
func (h *Handlers) HandleProjectEnroll(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	if err := h.projects.Enroll(c.Context(), sess.Username, c.Params("id")); err != nil {
		log.Printf("Error enrolling %s: %v", sess.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to enroll",
		})
	}
	return c.Redirect("/dashboard")
}

// HandleDashboard handles GET /dashboard
func (h *Handlers) HandleDashboard(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	enrolled, err := h.projects.ProjectsFor(c.Context(), sess.Username)
	if err != nil {
		log.Printf("Error loading enrollments for %s: %v", sess.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	return c.JSON(fiber.Map{
		"username":          sess.Username,
		"enrolled_projects": enrolled,
		"interest":          sess.Interest,
		"quiz_result":       sess.QuizResult,
	})
}

// HandleAdminDashboard handles GET /admin/dashboard
func (h *Handlers) HandleAdminDashboard(c *fiber.Ctx) error {
	ctx := c.Context()

	userCount, err := h.auth.UserCount(ctx)
	if err != nil {
		log.Printf("Error counting users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}
	projectCount, err := h.projects.ProjectCount(ctx)
	if err != nil {
		log.Printf("Error counting projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}
	enrollmentCount, err := h.projects.EnrollmentCount(ctx)
	if err != nil {
		log.Printf("Error counting enrollments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}
	enrollments, err := h.projects.Overview(ctx)
	if err != nil {
		log.Printf("Error loading enrollment overview: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	return c.JSON(fiber.Map{
		"user_count":       userCount,
		"project_count":    projectCount,
		"enrollment_count": enrollmentCount,
		"enrollments":      enrollments,
	})
}

// saveUpload stores an optional uploaded file under the upload directory and
// returns its reference. A missing file yields an empty ref; a disallowed
// extension is an error.
func (h *Handlers) saveUpload(c *fiber.Ctx, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return h.storeFile(c, fileHeader)
}

func (h *Handlers) storeFile(c *fiber.Ctx, fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExts[ext] {
		return "", errors.New("unsupported file type: " + ext)
	}

	name := uuid.NewString() + ext
	if err := c.SaveFile(fileHeader, filepath.Join(h.uploadDir, name)); err != nil {
		return "", err
	}
	return name, nil
}
