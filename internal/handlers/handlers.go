package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"careerguide/internal/quiz"
	"careerguide/internal/service"
	"careerguide/internal/session"
)

// Handlers contains the HTTP handlers for the career guide endpoints.
type Handlers struct {
	auth      *service.AuthService
	projects  *service.ProjectService
	guidance  *service.GuidanceService
	flow      *quiz.Flow
	sessions  session.Store
	uploadDir string
}

// New creates a new handlers instance.
func New(
	auth *service.AuthService,
	projects *service.ProjectService,
	guidance *service.GuidanceService,
	flow *quiz.Flow,
	sessions session.Store,
	uploadDir string,
) *Handlers {
	return &Handlers{
		auth:      auth,
		projects:  projects,
		guidance:  guidance,
		flow:      flow,
		sessions:  sessions,
		uploadDir: uploadDir,
	}
}

// HandleChat handles POST /api/chat
func (h *Handlers) HandleChat(c *fiber.Ctx) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	return c.JSON(fiber.Map{
		"reply": h.guidance.Chat(req.Message),
	})
}

// HandleRoadmap handles POST /api/roadmap
// Accepts either "goal" or the legacy "focus" field name.
func (h *Handlers) HandleRoadmap(c *fiber.Ctx) error {
	goal := c.FormValue("goal")
	if goal == "" {
		goal = c.FormValue("focus")
	}
	level := c.FormValue("level")

	topics := h.guidance.Roadmap(goal, level)
	if topics == nil {
		topics = []string{}
	}

	return c.JSON(fiber.Map{
		"goal":   goal,
		"level":  level,
		"topics": topics,
	})
}

// HandleResumeUpload handles POST /api/resume
// Multipart field: resume (pdf, docx or txt).
func (h *Handlers) HandleResumeUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening resume upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read upload",
		})
	}
	defer file.Close()

	report := h.guidance.AnalyzeResume(fileHeader.Filename, file)
	return c.JSON(report)
}

// HandleInterviewQuestion handles POST /api/interview/question
func (h *Handlers) HandleInterviewQuestion(c *fiber.Ctx) error {
	role := c.FormValue("role")
	index, err := strconv.Atoi(c.FormValue("index", "0"))
	if err != nil {
		index = 0
	}

	return c.JSON(fiber.Map{
		"question": h.guidance.InterviewQuestion(role, index),
	})
}

// HandleInterviewAnswer handles POST /api/interview/answer
func (h *Handlers) HandleInterviewAnswer(c *fiber.Ctx) error {
	feedback, score := h.guidance.EvaluateInterviewAnswer(c.FormValue("answer"))

	return c.JSON(fiber.Map{
		"feedback": feedback,
		"score":    score,
	})
}
