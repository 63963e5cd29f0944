package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"careerguide/internal/advisor"
	"careerguide/internal/quiz"
)

// HandleAssessmentPage handles GET /assessment
func (h *Handlers) HandleAssessmentPage(c *fiber.Ctx) error {
	state, err := h.flow.State(c.Context(), sessionID(c))
	if err != nil {
		log.Printf("Error loading assessment state: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load assessment",
		})
	}

	return c.JSON(fiber.Map{
		"state":     state.String(),
		"interests": advisor.Goals(),
	})
}

// HandleAssessmentInterest handles POST /assessment
// Choosing an interest restarts the flow: any earlier result is discarded.
func (h *Handlers) HandleAssessmentInterest(c *fiber.Ctx) error {
	err := h.flow.SubmitInterest(c.Context(), sessionID(c), c.FormValue("interest"))
	switch {
	case errors.Is(err, quiz.ErrNoInterest):
		return c.Redirect("/assessment")
	case err != nil:
		log.Printf("Error submitting interest: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record interest",
		})
	}
	return c.Redirect("/assessment/question")
}

// HandleAssessmentQuestionPage handles GET /assessment/question
func (h *Handlers) HandleAssessmentQuestionPage(c *fiber.Ctx) error {
	interest, _, err := h.flow.Result(c.Context(), sessionID(c))
	if err != nil {
		log.Printf("Error loading assessment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load assessment",
		})
	}
	if interest == "" {
		return c.Redirect("/assessment")
	}

	return c.JSON(fiber.Map{
		"interest": interest,
		"question": "Why does a career in " + interest + " appeal to you?",
	})
}

// HandleAssessmentAnswer handles POST /assessment/question
func (h *Handlers) HandleAssessmentAnswer(c *fiber.Ctx) error {
	err := h.flow.SubmitAnswer(c.Context(), sessionID(c), c.FormValue("answer"))
	switch {
	case errors.Is(err, quiz.ErrNoInterest):
		// The session expired or skipped ahead; restart the flow.
		return c.Redirect("/assessment")
	case errors.Is(err, quiz.ErrNoAnswer):
		return c.Redirect("/assessment/question")
	case err != nil:
		log.Printf("Error submitting answer: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record answer",
		})
	}
	return c.Redirect("/assessment/result")
}

// HandleAssessmentResult handles GET /assessment/result
// Missing values render as empty strings so a bookmarked result page never
// errors after the session expires.
func (h *Handlers) HandleAssessmentResult(c *fiber.Ctx) error {
	interest, result, err := h.flow.Result(c.Context(), sessionID(c))
	if err != nil {
		log.Printf("Error loading assessment result: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load result",
		})
	}

	return c.JSON(fiber.Map{
		"interest": interest,
		"result":   result,
	})
}
