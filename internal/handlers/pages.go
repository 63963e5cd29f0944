package handlers

import "github.com/gofiber/fiber/v2"

// infoPage describes one static informational page.
type infoPage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// infoPages maps each informational route to its page descriptor.
var infoPages = map[string]infoPage{
	"/": {
		Title:       "Career Guide",
		Description: "Your virtual career counselor: assessments, roadmaps, resume analysis and mock interviews.",
	},
	"/about": {
		Title:       "About",
		Description: "Career Guide helps students discover tech career paths and the skills to get there.",
	},
	"/career-assessment": {
		Title:       "Career Assessment",
		Description: "Answer a short question flow to find the career track that fits your interests.",
	},
	"/ai-suggestions": {
		Title:       "AI Suggestions",
		Description: "Chat with the guide bot for instant advice on careers and skills.",
	},
	"/skill-roadmap": {
		Title:       "Skill Roadmap",
		Description: "Get a step-by-step topic roadmap for your chosen career track and level.",
	},
	"/cloud-platform": {
		Title:       "Cloud Platform",
		Description: "Explore cloud career paths and the platforms powering modern deployments.",
	},
}

// HandleInfoPage handles the static informational routes, returning the page
// descriptor for the requested path.
func (h *Handlers) HandleInfoPage(c *fiber.Ctx) error {
	page, ok := infoPages[c.Path()]
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(page)
}
