package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerguide/internal/models"
)

// SessionCookie is the cookie carrying the visitor's session id.
const SessionCookie = "cg_session"

const sessionIDLocal = "sessionID"

// SessionMiddleware ensures every request carries a session id, minting a
// new one (and setting the cookie) when absent.
func (h *Handlers) SessionMiddleware(c *fiber.Ctx) error {
	id := c.Cookies(SessionCookie)
	if id == "" {
		id = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    id,
			HTTPOnly: true,
		})
	}
	c.Locals(sessionIDLocal, id)
	return c.Next()
}

// sessionID returns the request's session id set by SessionMiddleware.
func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionIDLocal).(string); ok {
		return id
	}
	return ""
}

// currentSession loads the session for this request.
func (h *Handlers) currentSession(c *fiber.Ctx) (*models.Session, error) {
	return h.sessions.Get(c.Context(), sessionID(c))
}

// RequireUser redirects unauthenticated requests to the login page.
func (h *Handlers) RequireUser(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}
	if !sess.LoggedIn() {
		return c.Redirect("/login")
	}
	return c.Next()
}

// RequireAdmin redirects non-admin requests to the admin login page.
func (h *Handlers) RequireAdmin(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}
	if !sess.Admin {
		return c.Redirect("/admin/login")
	}
	return c.Next()
}

// RateLimitKey keys the rate limiter by session when available, else by IP.
func RateLimitKey(c *fiber.Ctx) string {
	if id := c.Cookies(SessionCookie); id != "" {
		return "session:" + id
	}
	return c.IP()
}
