package service

import (
	"io"
	"log"

	"careerguide/internal/advisor"
	"careerguide/internal/models"
	"careerguide/internal/resume"
)

// GuidanceService fronts the rule-based advisory features: chatbot, roadmap,
// resume analysis and mock interviews. It holds no state; everything is
// driven by the static rule tables in the advisor package.
type GuidanceService struct{}

// NewGuidanceService creates a new guidance service.
func NewGuidanceService() *GuidanceService {
	return &GuidanceService{}
}

// Chat returns the canned response for a free-text message.
func (s *GuidanceService) Chat(message string) string {
	return advisor.Reply(message)
}

// Roadmap returns the topic sequence for a goal and level.
func (s *GuidanceService) Roadmap(goal, level string) []string {
	return advisor.Roadmap(goal, level)
}

// AnalyzeResume extracts text from an uploaded document and scores it. An
// unreadable document degrades to the zero-skill baseline rather than
// failing the request.
func (s *GuidanceService) AnalyzeResume(filename string, r io.Reader) models.ResumeReport {
	text, err := resume.ExtractFromReader(filename, r)
	if err != nil {
		log.Printf("Failed to extract resume text from %s: %v", filename, err)
		text = ""
	}
	return advisor.ScoreResume(text)
}

// InterviewQuestion returns the mock interview question for a role and index.
func (s *GuidanceService) InterviewQuestion(role string, index int) string {
	return advisor.Question(role, index)
}

// EvaluateInterviewAnswer scores a mock interview answer.
func (s *GuidanceService) EvaluateInterviewAnswer(answer string) (feedback string, score int) {
	return advisor.EvaluateAnswer(answer)
}
