package advisor

import "strings"

// ChatRule pairs trigger keywords with a canned response.
type ChatRule struct {
	Category string
	Triggers []string
	Response string
}

// chatRules is evaluated top to bottom and the first trigger hit wins, so a
// message mentioning several categories resolves to the earliest rule. The
// ordering here is a contract, not an implementation detail — tests pin it.
var chatRules = []ChatRule{
	{
		Category: "ai",
		Triggers: []string{"ai", "machine learning"},
		Response: "AI is booming 🤖 Learn Python, ML & LLMs.",
	},
	{
		Category: "cyber",
		Triggers: []string{"cyber"},
		Response: "Cybersecurity is huge 🔐 Learn networking & ethical hacking.",
	},
	{
		Category: "devops",
		Triggers: []string{"devops"},
		Response: "DevOps needs Docker, Kubernetes & CI/CD.",
	},
	{
		Category: "software",
		Triggers: []string{"software"},
		Response: "Software Dev is great! Start with Python or Web Dev.",
	},
	{
		Category: "data",
		Triggers: []string{"data"},
		Response: "Data Science needs Python, SQL & statistics.",
	},
	{
		Category: "design",
		Triggers: []string{"ui", "design"},
		Response: "UI/UX focuses on design & user experience 🎨.",
	},
	{
		Category: "career",
		Triggers: []string{"career"},
		Response: "Tell me your interests, I’ll guide you 🙂",
	},
}

// ChatFallback is returned when no rule matches (including empty input).
const ChatFallback = "I’m your Career Guide Bot 🤖 Ask me about careers or skills."

// Reply classifies a free-text message by substring match against the
// ordered rule table and returns the matching canned response. No side
// effects and no error conditions.
func Reply(message string) string {
	message = strings.ToLower(message)
	for _, rule := range chatRules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(message, trigger) {
				return rule.Response
			}
		}
	}
	return ChatFallback
}
