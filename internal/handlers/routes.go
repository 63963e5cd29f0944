package handlers

import "github.com/gofiber/fiber/v2"

// Register wires every route onto the app. Session handling applies to all
// routes; auth gates apply per group.
func (h *Handlers) Register(app *fiber.App) {
	app.Use(h.SessionMiddleware)

	// Static informational pages.
	for path := range infoPages {
		app.Get(path, h.HandleInfoPage)
	}

	// Guidance APIs, open to anonymous visitors.
	api := app.Group("/api")
	api.Post("/chat", h.HandleChat)
	api.Post("/roadmap", h.HandleRoadmap)
	api.Post("/resume", h.HandleResumeUpload)
	api.Post("/interview/question", h.HandleInterviewQuestion)
	api.Post("/interview/answer", h.HandleInterviewAnswer)

	// Assessment flow, session-scoped.
	app.Get("/assessment", h.HandleAssessmentPage)
	app.Post("/assessment", h.HandleAssessmentInterest)
	app.Get("/assessment/question", h.HandleAssessmentQuestionPage)
	app.Post("/assessment/question", h.HandleAssessmentAnswer)
	app.Get("/assessment/result", h.HandleAssessmentResult)

	// Auth.
	app.Post("/signup", h.HandleSignup)
	app.Post("/login", h.HandleLogin)
	app.Post("/logout", h.HandleLogout)
	app.Post("/admin/login", h.HandleAdminLogin)
	app.Post("/admin/logout", h.HandleAdminLogout)

	// Projects.
	app.Get("/projects", h.HandleProjectList)
	app.Post("/projects/:id/enroll", h.RequireUser, h.HandleProjectEnroll)
	app.Get("/dashboard", h.RequireUser, h.HandleDashboard)

	// Admin surface.
	admin := app.Group("/admin", h.RequireAdmin)
	admin.Get("/dashboard", h.HandleAdminDashboard)
	admin.Post("/projects", h.HandleProjectCreate)
}
