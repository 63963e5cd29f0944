package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"careerguide/internal/repository"
	"careerguide/internal/service"
)

// HandleSignup handles POST /signup
func (h *Handlers) HandleSignup(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	err := h.auth.Signup(c.Context(), username, password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password are required",
		})
	case errors.Is(err, repository.ErrDuplicateUser):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username already exists",
		})
	case err != nil:
		log.Printf("Error during signup: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create account",
		})
	}

	if err := h.setUser(c, username); err != nil {
		return err
	}
	return c.Redirect("/dashboard")
}

// HandleLogin handles POST /login
func (h *Handlers) HandleLogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	err := h.auth.Login(c.Context(), username, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrMissingCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid username or password",
		})
	case err != nil:
		log.Printf("Error during login: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log in",
		})
	}

	if err := h.setUser(c, username); err != nil {
		return err
	}
	return c.Redirect("/dashboard")
}

// HandleLogout handles POST /logout
// The whole session is destroyed, including any assessment progress.
func (h *Handlers) HandleLogout(c *fiber.Ctx) error {
	if err := h.sessions.Delete(c.Context(), sessionID(c)); err != nil {
		log.Printf("Error deleting session: %v", err)
	}
	c.ClearCookie(SessionCookie)
	return c.Redirect("/login")
}

// HandleAdminLogin handles POST /admin/login
func (h *Handlers) HandleAdminLogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	err := h.auth.AdminLogin(c.Context(), username, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrMissingCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid admin credentials",
		})
	case err != nil:
		log.Printf("Error during admin login: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log in",
		})
	}

	sess, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}
	sess.Admin = true
	if err := h.sessions.Save(c.Context(), sess); err != nil {
		log.Printf("Error saving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save session",
		})
	}
	return c.Redirect("/admin/dashboard")
}

// HandleAdminLogout handles POST /admin/logout
// Only the admin flag is dropped; a user login on the same session survives.
func (h *Handlers) HandleAdminLogout(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}
	sess.Admin = false
	if err := h.sessions.Save(c.Context(), sess); err != nil {
		log.Printf("Error saving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save session",
		})
	}
	return c.Redirect("/admin/login")
}

// setUser records a successful user login on the session.
func (h *Handlers) setUser(c *fiber.Ctx, username string) error {
	sess, err := h.currentSession(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}
	sess.Username = username
	if err := h.sessions.Save(c.Context(), sess); err != nil {
		log.Printf("Error saving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save session",
		})
	}
	return nil
}
