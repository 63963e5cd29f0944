package repository

import (
	"context"
	"errors"
	"testing"

	"careerguide/internal/models"
)

func TestMemoryAccountDuplicateKeepsOriginalSecret(t *testing.T) {
	store := NewMemoryAccountStore()
	ctx := context.Background()

	if err := store.Create(ctx, "alice", "pw"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Create(ctx, "alice", "pw2"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("second Create = %v, want ErrDuplicateUser", err)
	}

	secret, err := store.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if secret != "pw" {
		t.Errorf("secret = %q, want original %q", secret, "pw")
	}
}

func TestMemoryAccountExistsAndCount(t *testing.T) {
	store := NewMemoryAccountStore()
	ctx := context.Background()

	if ok, _ := store.Exists(ctx, "alice"); ok {
		t.Error("Exists on empty store = true")
	}
	_ = store.Create(ctx, "alice", "pw")
	_ = store.Create(ctx, "bob", "pw")

	if ok, _ := store.Exists(ctx, "alice"); !ok {
		t.Error("Exists(alice) = false after Create")
	}
	if count, _ := store.Count(ctx); count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
}

func TestMemoryAccountGetUnknown(t *testing.T) {
	store := NewMemoryAccountStore()
	if _, err := store.Get(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Get(unknown) = %v, want ErrUserNotFound", err)
	}
}

func TestMemoryProjectStoreListOrder(t *testing.T) {
	store := NewMemoryProjectStore()
	ctx := context.Background()

	_ = store.Put(ctx, models.Project{ID: "p1", Title: "First"})
	_ = store.Put(ctx, models.Project{ID: "p2", Title: "Second"})

	projects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 2 || projects[0].ID != "p1" || projects[1].ID != "p2" {
		t.Errorf("List = %v, want insertion order p1,p2", projects)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Get(missing) = %v, want ErrProjectNotFound", err)
	}
}

func TestMemoryEnrollmentAppendIfAbsent(t *testing.T) {
	store := NewMemoryEnrollmentStore()
	ctx := context.Background()

	added, err := store.Enroll(ctx, "alice", "p1")
	if err != nil || !added {
		t.Fatalf("Enroll = (%v, %v), want (true, nil)", added, err)
	}

	// Enrolling again must not duplicate the id.
	added, err = store.Enroll(ctx, "alice", "p1")
	if err != nil || added {
		t.Fatalf("repeat Enroll = (%v, %v), want (false, nil)", added, err)
	}

	_, _ = store.Enroll(ctx, "alice", "p2")

	record, err := store.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := []string{"p1", "p2"}
	if len(record.ProjectIDs) != 2 || record.ProjectIDs[0] != want[0] || record.ProjectIDs[1] != want[1] {
		t.Errorf("ProjectIDs = %v, want %v", record.ProjectIDs, want)
	}
}

func TestMemoryEnrollmentUnknownUserIsEmpty(t *testing.T) {
	store := NewMemoryEnrollmentStore()

	record, err := store.Get(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(record.ProjectIDs) != 0 {
		t.Errorf("ProjectIDs = %v, want empty", record.ProjectIDs)
	}
}
