package advisor

import (
	"strings"

	"careerguide/internal/models"
)

// skillVocabulary is checked against resume text by case-insensitive
// containment. FoundSkills follows this order, not document order.
var skillVocabulary = []string{
	"Python",
	"Java",
	"JavaScript",
	"Flask",
	"C++",
	"SQL",
	"HTML",
	"CSS",
	"React",
	"Node.js",
	"Machine Learning",
	"Deep Learning",
	"Data Analysis",
	"AWS",
	"Docker",
	"Kubernetes",
	"Linux",
	"Git",
	"Networking",
	"Communication",
}

// Scoring constants. ATS starts from a base and climbs per found skill;
// both scores are capped.
const (
	atsBaseScore     = 40
	atsPerSkill      = 10
	atsMaxScore      = 90
	matchPerSkill    = 20
	matchMaxScore    = 100
)

// ScoreResume computes skill hits and derived scores for extracted resume
// text. Empty text degrades to the zero-skill baseline instead of erroring.
func ScoreResume(text string) models.ResumeReport {
	lower := strings.ToLower(text)

	found := []string{}
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}

	n := len(found)

	ats := atsBaseScore + atsPerSkill*n
	if ats > atsMaxScore {
		ats = atsMaxScore
	}

	match := matchPerSkill * n
	if match > matchMaxScore {
		match = matchMaxScore
	}

	return models.ResumeReport{
		ATSScore:        ats,
		SkillMatchScore: match,
		ExperienceLabel: experienceLabel(n),
		FoundSkills:     found,
	}
}

// experienceLabel buckets the skill count into a coarse experience band.
func experienceLabel(found int) string {
	switch {
	case found <= 1:
		return "Entry Level"
	case found <= 4:
		return "Intermediate"
	default:
		return "Experienced"
	}
}
