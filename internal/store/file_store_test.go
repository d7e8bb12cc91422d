package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "gigs.json"))
}

func sampleGig(id, title string) model.Gig {
	return model.Gig{
		ID:          id,
		Title:       title,
		Description: "d",
		Tags:        datatypes.NewJSONSlice([]string{"go"}),
		Bounty:      "5",
		Status:      model.GigStatusOpen,
		Author:      "A",
		CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Mentors: datatypes.NewJSONSlice([]model.Mentor{
			{ID: "m1", Name: "Sarah", Rating: 5, Specialties: []string{"Go"}},
		}),
	}
}

func TestFileStore_MissingDocument(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadAll(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestFileStore_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gigs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileStore(path)
	_, err := s.LoadAll(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	_, err = s.GetByID(context.Background(), "1")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestFileStore_InsertPrepends(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Reset(ctx, nil))

	first := sampleGig("1", "first")
	second := sampleGig("2", "second")
	require.NoError(t, s.Insert(ctx, &first))
	require.NoError(t, s.Insert(ctx, &second))

	gigs, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, gigs, 2)
	assert.Equal(t, "2", gigs[0].ID)
	assert.Equal(t, "1", gigs[1].ID)
}

func TestFileStore_GetByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Reset(ctx, []model.Gig{sampleGig("1", "X")}))

	gig, err := s.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "X", gig.Title)

	_, err = s.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
}

func TestFileStore_UpdatePreservesIDAndCreatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	original := sampleGig("1", "X")
	require.NoError(t, s.Reset(ctx, []model.Gig{original}))

	status := model.GigStatusCompleted
	updated, err := s.UpdateByID(ctx, "1", model.GigUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, model.GigStatusCompleted, updated.Status)
	assert.Equal(t, "X", updated.Title)
	assert.True(t, updated.CreatedAt.Equal(original.CreatedAt))
}

func TestFileStore_UpdateReplacesMentorsWholesale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Reset(ctx, []model.Gig{sampleGig("1", "X")}))

	replacement := []model.Mentor{
		{ID: "m9", Name: "Nina", Rating: 4},
	}
	updated, err := s.UpdateByID(ctx, "1", model.GigUpdate{Mentors: &replacement})
	require.NoError(t, err)

	require.Len(t, updated.Mentors, 1)
	assert.Equal(t, "m9", updated.Mentors[0].ID)
}

func TestFileStore_UpdateUnknownID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Reset(ctx, nil))

	title := "Y"
	_, err := s.UpdateByID(ctx, "ghost", model.GigUpdate{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seed := []model.Gig{sampleGig("1", "X"), sampleGig("2", "Y")}
	require.NoError(t, s.Reset(ctx, seed))

	// Reopen from disk to force a full decode of the persisted document.
	reopened := NewFileStore(s.path)
	gigs, err := reopened.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, gigs, 2)
	for i := range seed {
		assert.Equal(t, seed[i].ID, gigs[i].ID)
		assert.Equal(t, seed[i].Title, gigs[i].Title)
		assert.Equal(t, seed[i].Bounty, gigs[i].Bounty)
		assert.Equal(t, []string(seed[i].Tags), []string(gigs[i].Tags))
		assert.Equal(t, []model.Mentor(seed[i].Mentors), []model.Mentor(gigs[i].Mentors))
		assert.True(t, seed[i].CreatedAt.Equal(gigs[i].CreatedAt))
	}
}

func TestFileStore_PersistedLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gigs.json")
	s := NewFileStore(path)
	require.NoError(t, s.Reset(context.Background(), []model.Gig{sampleGig("1", "X")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"gigs"`)
}
