package advisor

import "strings"

// questionBank maps a role track to its ordered interview questions.
// Unknown roles fall back to the general set.
var questionBank = map[string][]string{
	"software": {
		"Walk me through a project you built end to end.",
		"How do you decide between fixing a bug quickly and fixing it properly?",
		"Explain the difference between an array and a linked list.",
		"How do you keep your code readable for the next person?",
	},
	"data": {
		"How would you explain a p-value to a non-technical stakeholder?",
		"Describe a dataset you cleaned and what made it messy.",
		"When would you prefer a simple model over a complex one?",
		"How do you validate that an analysis is correct?",
	},
	"ai": {
		"What is overfitting and how do you detect it?",
		"Describe the difference between supervised and unsupervised learning.",
		"How would you evaluate a classification model on imbalanced data?",
		"What trade-offs matter when deploying a model to production?",
	},
	"cyber": {
		"What happens when you type a URL into a browser, security-wise?",
		"Explain the difference between symmetric and asymmetric encryption.",
		"How would you respond to a suspected phishing incident?",
		"What is the principle of least privilege?",
	},
	"devops": {
		"What does a healthy CI/CD pipeline look like to you?",
		"How do containers differ from virtual machines?",
		"Describe a production incident you debugged and what you changed after.",
		"How do you roll back a bad deployment safely?",
	},
	"uiux": {
		"How do you decide what to test in a usability study?",
		"Walk me through your process from brief to final design.",
		"How do you handle feedback that conflicts with research findings?",
		"What makes a design accessible?",
	},
}

// generalQuestions is the fallback for unknown roles.
var generalQuestions = []string{
	"Tell me about yourself.",
	"Why are you interested in this career path?",
	"Describe a challenge you faced and how you handled it.",
	"Where do you see yourself in five years?",
}

// Answer length threshold (after trimming) separating the two score bands.
const shortAnswerLimit = 20

const (
	shortAnswerScore    = 4
	detailedAnswerScore = 8

	shortAnswerFeedback    = "Too brief — expand your answer with a concrete example and the outcome."
	detailedAnswerFeedback = "Good level of detail. Structure it as situation, action, result for more impact."
)

// Question returns the interview question at the given index for a role,
// wrapping around the bank. Unknown roles use the general set.
func Question(role string, index int) string {
	questions, ok := questionBank[strings.ToLower(strings.TrimSpace(role))]
	if !ok || len(questions) == 0 {
		questions = generalQuestions
	}
	if index < 0 {
		index = 0
	}
	return questions[index%len(questions)]
}

// EvaluateAnswer scores a mock interview answer. There are exactly two
// bands: trimmed answers shorter than the limit score 4, everything else 8.
func EvaluateAnswer(answer string) (feedback string, score int) {
	if len(strings.TrimSpace(answer)) < shortAnswerLimit {
		return shortAnswerFeedback, shortAnswerScore
	}
	return detailedAnswerFeedback, detailedAnswerScore
}
