// Package quiz implements the session-scoped career assessment flow.
//
// Each session walks Start → InterestChosen → ResultReady. The state is not
// stored explicitly; it is derived from which session fields are set, so the
// session store stays the single source of truth.
package quiz

import (
	"context"
	"errors"
	"strings"

	"careerguide/internal/session"
)

// State of the assessment flow for one session.
type State int

const (
	// StateStart means no interest has been chosen yet.
	StateStart State = iota
	// StateInterestChosen means an interest is recorded but no answer yet.
	StateInterestChosen
	// StateResultReady means both interest and answer are recorded.
	StateResultReady
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateInterestChosen:
		return "interest_chosen"
	case StateResultReady:
		return "result_ready"
	default:
		return "unknown"
	}
}

var (
	// ErrNoInterest signals a transition that requires an interest the
	// session does not have. Handlers redirect to the flow entry.
	ErrNoInterest = errors.New("no interest selected")
	// ErrNoAnswer signals an answer submission with an empty answer.
	ErrNoAnswer = errors.New("no answer supplied")
)

// Flow drives the assessment state machine over the session store.
type Flow struct {
	sessions session.Store
}

// NewFlow creates an assessment flow backed by the given session store.
func NewFlow(sessions session.Store) *Flow {
	return &Flow{sessions: sessions}
}

// State reports the current flow state for a session.
func (f *Flow) State(ctx context.Context, sessionID string) (State, error) {
	sess, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		return StateStart, err
	}
	switch {
	case sess.Interest == "":
		return StateStart, nil
	case sess.QuizResult == "":
		return StateInterestChosen, nil
	default:
		return StateResultReady, nil
	}
}

// SubmitInterest records the chosen interest. A new interest invalidates any
// previously recorded result so a stale answer cannot be displayed against a
// different interest. An empty interest is rejected.
func (f *Flow) SubmitInterest(ctx context.Context, sessionID, interest string) error {
	interest = strings.TrimSpace(interest)
	if interest == "" {
		return ErrNoInterest
	}

	sess, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Interest = interest
	sess.QuizResult = ""
	return f.sessions.Save(ctx, sess)
}

// SubmitAnswer records the submitted answer verbatim as the session result.
// It requires an interest to be set; otherwise the caller must restart the
// flow.
func (f *Flow) SubmitAnswer(ctx context.Context, sessionID, answer string) error {
	if strings.TrimSpace(answer) == "" {
		return ErrNoAnswer
	}

	sess, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Interest == "" {
		return ErrNoInterest
	}
	sess.QuizResult = answer
	return f.sessions.Save(ctx, sess)
}

// Result returns the recorded interest and result. Absent values come back
// as empty strings; an expired or skipped flow is not an error.
func (f *Flow) Result(ctx context.Context, sessionID string) (interest, result string, err error) {
	sess, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", "", err
	}
	return sess.Interest, sess.QuizResult, nil
}
