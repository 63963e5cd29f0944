package advisor

import (
	"strings"
	"testing"
)

func TestEvaluateAnswerBoundary(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"length 19", strings.Repeat("a", 19), 4},
		{"length 20", strings.Repeat("a", 20), 8},
		{"empty", "", 4},
		{"whitespace only", "                         ", 4},
		{"padded short answer", "   " + strings.Repeat("a", 19) + "   ", 4},
		{"padded long answer", "   " + strings.Repeat("a", 20) + "   ", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback, score := EvaluateAnswer(tt.answer)
			if score != tt.want {
				t.Errorf("EvaluateAnswer score = %d, want %d", score, tt.want)
			}
			if feedback == "" {
				t.Error("EvaluateAnswer returned empty feedback")
			}
		})
	}
}

func TestQuestionKnownRole(t *testing.T) {
	q0 := Question("software", 0)
	q1 := Question("software", 1)
	if q0 == "" || q1 == "" {
		t.Fatal("expected non-empty questions")
	}
	if q0 == q1 {
		t.Error("consecutive indexes returned the same question")
	}
	// Index wraps around the bank.
	if got := Question("software", 4); got != q0 {
		t.Errorf("Question(software, 4) = %q, want wrap to %q", got, q0)
	}
}

func TestQuestionUnknownRoleFallsBack(t *testing.T) {
	if got := Question("astronaut", 0); got != generalQuestions[0] {
		t.Errorf("Question(unknown role) = %q, want general bank", got)
	}
	if got := Question("", 0); got != generalQuestions[0] {
		t.Errorf("Question(empty role) = %q, want general bank", got)
	}
}

func TestQuestionRoleCaseInsensitive(t *testing.T) {
	if Question("DevOps", 0) != Question("devops", 0) {
		t.Error("role lookup should be case-insensitive")
	}
}

func TestQuestionNegativeIndex(t *testing.T) {
	if got := Question("data", -3); got != Question("data", 0) {
		t.Errorf("negative index should clamp to first question, got %q", got)
	}
}
