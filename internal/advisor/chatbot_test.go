package advisor

import "testing"

func TestReplySingleCategory(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"ai keyword", "tell me about ai", "AI is booming 🤖 Learn Python, ML & LLMs."},
		{"machine learning keyword", "is machine learning worth it?", "AI is booming 🤖 Learn Python, ML & LLMs."},
		{"cyber keyword", "I like cybersecurity", "Cybersecurity is huge 🔐 Learn networking & ethical hacking."},
		{"devops keyword", "what about devops", "DevOps needs Docker, Kubernetes & CI/CD."},
		{"software keyword", "software jobs?", "Software Dev is great! Start with Python or Web Dev."},
		{"data keyword", "how to get into data?", "Data Science needs Python, SQL & statistics."},
		{"ui keyword", "I enjoy ui work", "UI/UX focuses on design & user experience 🎨."},
		{"design keyword", "graphic design maybe", "UI/UX focuses on design & user experience 🎨."},
		{"career keyword", "help with my career", "Tell me your interests, I’ll guide you 🙂"},
		{"case folded", "TELL ME ABOUT DEVOPS", "DevOps needs Docker, Kubernetes & CI/CD."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reply(tt.message); got != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

// Messages hitting two categories must resolve to whichever rule is listed
// first. These cases pin the rule ordering.
func TestReplyPriorityOrder(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"ai beats data", "ai and data science", "AI is booming 🤖 Learn Python, ML & LLMs."},
		{"cyber beats software", "software or cyber?", "Cybersecurity is huge 🔐 Learn networking & ethical hacking."},
		{"devops beats design", "devops vs design", "DevOps needs Docker, Kubernetes & CI/CD."},
		{"software beats career", "software career advice", "Software Dev is great! Start with Python or Web Dev."},
		{"data beats career", "data career?", "Data Science needs Python, SQL & statistics."},
		{"design beats career", "design career?", "UI/UX focuses on design & user experience 🎨."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reply(tt.message); got != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestReplyFallback(t *testing.T) {
	for _, message := range []string{"", "hello there", "what's for lunch"} {
		if got := Reply(message); got != ChatFallback {
			t.Errorf("Reply(%q) = %q, want fallback", message, got)
		}
	}
}
