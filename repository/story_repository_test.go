package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instaclone-core/apperrors"
	models "instaclone-core/model"
)

func TestMarkViewedReportsFirstView(t *testing.T) {
	repo := NewStoryRepository()
	ctx := context.Background()
	viewer := uuid.New()

	story, err := repo.CreateStory(ctx, models.Story{ID: uuid.New(), OwnerID: uuid.New()})
	require.NoError(t, err)

	first, err := repo.MarkViewed(ctx, viewer, story.ID)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := repo.MarkViewed(ctx, viewer, story.ID)
	require.NoError(t, err)
	assert.False(t, again)

	_, err = repo.MarkViewed(ctx, viewer, uuid.New())
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestViewedStateIsPerViewerPair(t *testing.T) {
	repo := NewStoryRepository()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	story, err := repo.CreateStory(ctx, models.Story{ID: uuid.New(), OwnerID: uuid.New()})
	require.NoError(t, err)

	_, err = repo.MarkViewed(ctx, alice, story.ID)
	require.NoError(t, err)

	forAlice, err := repo.GetStory(ctx, alice, story.ID)
	require.NoError(t, err)
	assert.True(t, forAlice.IsViewed)

	forBob, err := repo.GetStory(ctx, bob, story.ID)
	require.NoError(t, err)
	assert.False(t, forBob.IsViewed)

	// A fresh view by bob is still a first view for his pair.
	first, err := repo.MarkViewed(ctx, bob, story.ID)
	require.NoError(t, err)
	assert.True(t, first)
}

func TestCreateStoryIgnoresViewerFields(t *testing.T) {
	repo := NewStoryRepository()
	ctx := context.Background()
	owner := uuid.New()

	// Viewer-relative fields passed at creation are not trusted.
	story, err := repo.CreateStory(ctx, models.Story{
		ID:         uuid.New(),
		OwnerID:    owner,
		IsViewed:   true,
		IsOwnStory: true,
	})
	require.NoError(t, err)
	assert.False(t, story.IsViewed)
	assert.False(t, story.IsOwnStory)

	forOwner, err := repo.GetStory(ctx, owner, story.ID)
	require.NoError(t, err)
	assert.True(t, forOwner.IsOwnStory)
	assert.False(t, forOwner.IsViewed)
}
