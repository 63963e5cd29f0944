package session

import (
	"context"
	"testing"

	"careerguide/internal/models"
)

func TestMemoryStoreMissingSessionIsFresh(t *testing.T) {
	store := NewMemoryStore()

	sess, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.ID != "nope" {
		t.Errorf("ID = %q, want %q", sess.ID, "nope")
	}
	if sess.Username != "" || sess.Interest != "" || sess.QuizResult != "" || sess.Admin {
		t.Errorf("fresh session is not zero-valued: %+v", sess)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	saved := &models.Session{ID: "s1", Username: "alice", Interest: "AI", QuizResult: "42"}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got != *saved {
		t.Errorf("Get = %+v, want %+v", got, saved)
	}

	// Mutating the returned session must not affect the stored copy.
	got.Interest = "changed"
	again, _ := store.Get(ctx, "s1")
	if again.Interest != "AI" {
		t.Errorf("store returned aliased session state")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Save(ctx, &models.Session{ID: "s1", Username: "alice"})
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	sess, _ := store.Get(ctx, "s1")
	if sess.Username != "" {
		t.Errorf("session survived delete: %+v", sess)
	}

	// Unknown id is a no-op.
	if err := store.Delete(ctx, "unknown"); err != nil {
		t.Errorf("Delete(unknown) = %v, want nil", err)
	}
}
