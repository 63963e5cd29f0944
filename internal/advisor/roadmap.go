package advisor

import "strings"

// roadmaps maps a career track to its full ordered topic sequence. Earlier
// levels are served as prefixes of the full sequence, so new topics must be
// appended, never inserted, when a track is extended.
var roadmaps = map[string][]string{
	"software": {
		"Programming Fundamentals (Python)",
		"Data Structures & Algorithms",
		"Version Control with Git",
		"Web Development Basics",
		"Databases & SQL",
		"System Design & APIs",
	},
	"data": {
		"Python for Data Analysis",
		"Statistics & Probability",
		"SQL & Data Wrangling",
		"Data Visualization",
		"Machine Learning Basics",
		"Big Data Tools",
	},
	"ai": {
		"Python & Math Foundations",
		"Machine Learning Fundamentals",
		"Deep Learning & Neural Networks",
		"Natural Language Processing",
		"Model Deployment",
		"LLMs & Prompt Engineering",
	},
	"cyber": {
		"Networking Fundamentals",
		"Operating Systems & Linux",
		"Security Principles",
		"Ethical Hacking Basics",
		"Web Application Security",
		"Incident Response & Forensics",
	},
	"devops": {
		"Linux & Shell Scripting",
		"Version Control with Git",
		"Docker & Containers",
		"CI/CD Pipelines",
		"Kubernetes",
		"Cloud Infrastructure & Monitoring",
	},
	"uiux": {
		"Design Principles",
		"User Research",
		"Wireframing & Prototyping",
		"Figma & Design Tools",
		"Usability Testing",
		"Design Systems",
	},
}

// goalAliases folds the free-form goal names the forms send into canonical
// track keys.
var goalAliases = map[string]string{
	"software":           "software",
	"software developer": "software",
	"software dev":       "software",
	"web":                "software",
	"data":               "data",
	"data science":       "data",
	"data scientist":     "data",
	"ai":                 "ai",
	"ai/ml":              "ai",
	"machine learning":   "ai",
	"cyber":              "cyber",
	"cybersecurity":      "cyber",
	"cyber security":     "cyber",
	"devops":             "devops",
	"uiux":               "uiux",
	"ui/ux":              "uiux",
	"design":             "uiux",
}

// Truncation lengths per level; anything else gets the full sequence.
const (
	beginnerTopics     = 4
	intermediateTopics = 5
)

// Roadmap returns the ordered topic sequence for a career goal, truncated
// by experience level. An unknown goal yields an empty sequence rather than
// an error.
func Roadmap(goal, level string) []string {
	key, ok := goalAliases[strings.ToLower(strings.TrimSpace(goal))]
	if !ok {
		return nil
	}
	full := roadmaps[key]

	n := len(full)
	switch {
	case strings.EqualFold(level, "Beginner"):
		if n > beginnerTopics {
			n = beginnerTopics
		}
	case strings.EqualFold(level, "Intermediate"):
		if n > intermediateTopics {
			n = intermediateTopics
		}
	}

	topics := make([]string, n)
	copy(topics, full[:n])
	return topics
}

// Goals returns the canonical track keys in a stable order.
func Goals() []string {
	return []string{"software", "data", "ai", "cyber", "devops", "uiux"}
}
