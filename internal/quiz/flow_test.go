package quiz

import (
	"context"
	"errors"
	"testing"

	"careerguide/internal/session"
)

func newTestFlow() *Flow {
	return NewFlow(session.NewMemoryStore())
}

func TestFlowHappyPath(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	if state, _ := flow.State(ctx, "s1"); state != StateStart {
		t.Fatalf("initial state = %v, want start", state)
	}

	if err := flow.SubmitInterest(ctx, "s1", "AI"); err != nil {
		t.Fatalf("SubmitInterest: %v", err)
	}
	if state, _ := flow.State(ctx, "s1"); state != StateInterestChosen {
		t.Fatalf("state = %v, want interest_chosen", state)
	}

	if err := flow.SubmitAnswer(ctx, "s1", "42"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if state, _ := flow.State(ctx, "s1"); state != StateResultReady {
		t.Fatalf("state = %v, want result_ready", state)
	}

	interest, result, err := flow.Result(ctx, "s1")
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if interest != "AI" || result != "42" {
		t.Errorf("Result = (%q, %q), want (AI, 42)", interest, result)
	}
}

// Reading the result before any answer is submitted yields an absent result,
// not an error.
func TestFlowResultWithoutAnswer(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	if err := flow.SubmitInterest(ctx, "s1", "AI"); err != nil {
		t.Fatalf("SubmitInterest: %v", err)
	}

	interest, result, err := flow.Result(ctx, "s1")
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if interest != "AI" {
		t.Errorf("interest = %q, want AI", interest)
	}
	if result != "" {
		t.Errorf("result = %q, want absent", result)
	}
}

func TestFlowEmptyInterestRejected(t *testing.T) {
	flow := newTestFlow()

	for _, interest := range []string{"", "   "} {
		err := flow.SubmitInterest(context.Background(), "s1", interest)
		if !errors.Is(err, ErrNoInterest) {
			t.Errorf("SubmitInterest(%q) = %v, want ErrNoInterest", interest, err)
		}
	}
}

func TestFlowAnswerWithoutInterest(t *testing.T) {
	flow := newTestFlow()

	err := flow.SubmitAnswer(context.Background(), "s1", "42")
	if !errors.Is(err, ErrNoInterest) {
		t.Errorf("SubmitAnswer without interest = %v, want ErrNoInterest", err)
	}
}

func TestFlowEmptyAnswerRejected(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	_ = flow.SubmitInterest(ctx, "s1", "AI")
	if err := flow.SubmitAnswer(ctx, "s1", "  "); !errors.Is(err, ErrNoAnswer) {
		t.Errorf("SubmitAnswer(blank) = %v, want ErrNoAnswer", err)
	}
}

// Re-submitting an interest mid-flow discards the previous result so a stale
// answer can never be shown against a new interest.
func TestFlowNewInterestClearsResult(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	_ = flow.SubmitInterest(ctx, "s1", "AI")
	_ = flow.SubmitAnswer(ctx, "s1", "42")

	if err := flow.SubmitInterest(ctx, "s1", "Cybersecurity"); err != nil {
		t.Fatalf("SubmitInterest: %v", err)
	}

	interest, result, _ := flow.Result(ctx, "s1")
	if interest != "Cybersecurity" {
		t.Errorf("interest = %q, want Cybersecurity", interest)
	}
	if result != "" {
		t.Errorf("stale result survived interest change: %q", result)
	}
	if state, _ := flow.State(ctx, "s1"); state != StateInterestChosen {
		t.Errorf("state = %v, want interest_chosen", state)
	}
}

// Sessions are independent of each other.
func TestFlowSessionIsolation(t *testing.T) {
	flow := newTestFlow()
	ctx := context.Background()

	_ = flow.SubmitInterest(ctx, "s1", "AI")
	_ = flow.SubmitInterest(ctx, "s2", "DevOps")
	_ = flow.SubmitAnswer(ctx, "s1", "42")

	if _, result, _ := flow.Result(ctx, "s2"); result != "" {
		t.Errorf("s2 result = %q, want absent", result)
	}
	if interest, _, _ := flow.Result(ctx, "s2"); interest != "DevOps" {
		t.Errorf("s2 interest = %q, want DevOps", interest)
	}
}
