package models

// Session holds the per-visitor transient state tracked across requests.
// It lives in the session store only; nothing here survives past the
// session lifetime.
type Session struct {
	ID         string `json:"id"`
	Username   string `json:"username,omitempty"`
	Admin      bool   `json:"admin,omitempty"`
	Interest   string `json:"interest,omitempty"`
	QuizResult string `json:"quizResult,omitempty"`
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s *Session) LoggedIn() bool {
	return s.Username != ""
}

// Project is an admin-created project listing.
type Project struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ProblemStatement string `json:"problemStatement"`
	SolutionOverview string `json:"solutionOverview"`
	ImageRef         string `json:"imageRef,omitempty"`
	DocumentRef      string `json:"documentRef,omitempty"`
}

// Enrollment associates a user with the set of projects they joined.
// ProjectIDs keeps insertion order; a project id appears at most once.
type Enrollment struct {
	Username   string   `json:"username"`
	ProjectIDs []string `json:"projectIds"`
}

// ResumeReport is the outcome of scoring an uploaded resume against the
// skill vocabulary.
type ResumeReport struct {
	ATSScore        int      `json:"atsScore"`
	SkillMatchScore int      `json:"skillMatchScore"`
	ExperienceLabel string   `json:"experienceLabel"`
	FoundSkills     []string `json:"foundSkills"`
}
