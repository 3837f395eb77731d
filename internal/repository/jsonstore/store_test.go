package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"clubsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewEventRepository(dir)
	require.NoError(t, err)

	event := &domain.Event{
		ID:     "e1",
		Slug:   "hack-night",
		Title:  "Hack Night",
		Status: domain.EventStatusUpcoming,
		Date:   "2026-03-01",
	}
	require.NoError(t, repo.Create(ctx, event))

	// A second repository over the same directory sees the flushed state.
	reopened, err := NewEventRepository(dir)
	require.NoError(t, err)

	got, err := reopened.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Hack Night", got.Title)

	bySlug, err := reopened.GetBySlug(ctx, "hack-night")
	require.NoError(t, err)
	assert.Equal(t, "e1", bySlug.ID)
}

func TestEventRepository_MissingFileIsEmpty(t *testing.T) {
	repo, err := NewEventRepository(t.TempDir())
	require.NoError(t, err)

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventRepository_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.json"), []byte("{broken"), 0o644))

	_, err := NewEventRepository(dir)
	assert.Error(t, err)
}

func TestEventRepository_UpdateAndDelete(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewEventRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &domain.Event{ID: "e1", Title: "Old"}))

	title := "New"
	updated, err := repo.Update(ctx, "e1", domain.EventPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.False(t, updated.UpdatedAt.IsZero())

	_, err = repo.Update(ctx, "missing", domain.EventPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "e1"))
	assert.ErrorIs(t, repo.Delete(ctx, "e1"), domain.ErrNotFound)

	reopened, err := NewEventRepository(dir)
	require.NoError(t, err)
	events, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

// Exercised under -race: serializing listed records while another goroutine
// updates one of them must not touch the same memory.
func TestEventRepository_ConcurrentReadAndUpdate(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewEventRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &domain.Event{
		ID:      "e1",
		Title:   "Hack Night",
		Gallery: []string{"a.jpg"},
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			title := fmt.Sprintf("Hack Night v%d", i)
			gallery := []string{fmt.Sprintf("%d.jpg", i)}
			_, err := repo.Update(ctx, "e1", domain.EventPatch{Title: &title, Gallery: &gallery})
			assert.NoError(t, err)
		}
	}()

	for i := 0; i < 100; i++ {
		events, err := repo.List(ctx)
		require.NoError(t, err)
		_, err = json.Marshal(events)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, "e1")
		require.NoError(t, err)
		_, err = json.Marshal(got)
		require.NoError(t, err)
	}
	<-done
}

func TestEventRepository_FlushFailureIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewEventRepository(dir)
	require.NoError(t, err)

	// A directory squatting on the collection path makes the atomic rename fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "events.json"), 0o755))

	err = repo.Create(ctx, &domain.Event{ID: "e1", Title: "Hack Night"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_HashRoundTrips(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewUserRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &domain.User{
		ID:           "u1",
		Email:        "asha@example.com",
		PasswordHash: "bcrypt-hash",
		Role:         domain.RoleAdmin,
	}))

	// The hash is persisted even though domain.User hides it from JSON.
	reopened, err := NewUserRepository(dir)
	require.NoError(t, err)
	got, err := reopened.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bcrypt-hash", got.PasswordHash)

	// And it never appears in the raw file under a leaking key.
	raw, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "passwordHash")
}

func TestMemberRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewMemberRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &domain.Member{
		ID:         "m1",
		Name:       "Asha",
		Type:       domain.MemberTypeExecutive,
		MemberYear: 2025,
	}))

	reopened, err := NewMemberRepository(dir)
	require.NoError(t, err)
	got, err := reopened.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.MemberYear)
}

func TestProjectRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewProjectRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &domain.Project{
		ID:           "p1",
		Title:        "Club Site",
		Contributors: []string{"u1"},
	}))

	reopened, err := NewProjectRepository(dir)
	require.NoError(t, err)
	projects, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"u1"}, projects[0].Contributors)
}
