package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"careerguide/internal/database"
	"careerguide/internal/models"
)

func newTestDB(t *testing.T) *SQLiteAccountStore {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteAccountStore(db, "users")
}

func TestSQLiteAccountDuplicateKeepsOriginalSecret(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "alice", "pw"))

	err := store.Create(ctx, "alice", "pw2")
	require.ErrorIs(t, err, ErrDuplicateUser)

	secret, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "pw", secret)
}

func TestSQLiteAccountExistsAndCount(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, store.Create(ctx, "alice", "pw"))
	require.NoError(t, store.Create(ctx, "bob", "pw"))

	exists, err = store.Exists(ctx, "alice")
	require.NoError(t, err)
	require.True(t, exists)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestSQLiteAccountGetUnknown(t *testing.T) {
	store := newTestDB(t)

	_, err := store.Get(context.Background(), "ghost")
	require.True(t, errors.Is(err, ErrUserNotFound))
}

func TestSQLiteProjectRoundTrip(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteProjectStore(db)
	ctx := context.Background()

	project := models.Project{
		ID:               "p1",
		Title:            "Career Portal",
		ProblemStatement: "Students lack guidance",
		SolutionOverview: "Build a portal",
		ImageRef:         "portal.png",
	}
	require.NoError(t, store.Put(ctx, project))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, project, *got)

	_, err = store.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrProjectNotFound)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSQLiteEnrollmentAppendIfAbsent(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteEnrollmentStore(db)
	ctx := context.Background()

	added, err := store.Enroll(ctx, "alice", "p1")
	require.NoError(t, err)
	require.True(t, added)

	added, err = store.Enroll(ctx, "alice", "p1")
	require.NoError(t, err)
	require.False(t, added)

	added, err = store.Enroll(ctx, "alice", "p2")
	require.NoError(t, err)
	require.True(t, added)

	record, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2"}, record.ProjectIDs)

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSQLiteEnrollmentUnknownUserIsEmpty(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewSQLiteEnrollmentStore(db)

	record, err := store.Get(context.Background(), "ghost")
	require.NoError(t, err)
	require.Empty(t, record.ProjectIDs)
}
