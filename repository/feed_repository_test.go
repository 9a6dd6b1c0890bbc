package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instaclone-core/apperrors"
	models "instaclone-core/model"
)

func seedPost(t *testing.T, repo FeedRepository, likes int32) *models.Post {
	t.Helper()
	post, err := repo.CreatePost(context.Background(), models.Post{
		ID:         uuid.New(),
		AuthorID:   uuid.New(),
		ImageURL:   "https://example.com/p.jpg",
		CreatedAt:  time.Date(2025, 1, 21, 12, 0, 0, 0, time.UTC),
		LikesCount: likes,
	})
	require.NoError(t, err)
	return post
}

func TestCreatePostDuplicateID(t *testing.T) {
	repo := NewFeedRepository()
	post := seedPost(t, repo, 0)

	_, err := repo.CreatePost(context.Background(), models.Post{ID: post.ID})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestConcurrentTogglesKeepCounterConsistent(t *testing.T) {
	repo := NewFeedRepository()
	post := seedPost(t, repo, 0)
	ctx := context.Background()
	now := time.Now()

	const viewers = 32
	var wg sync.WaitGroup
	wg.Add(viewers)
	for i := 0; i < viewers; i++ {
		go func() {
			defer wg.Done()
			viewer := uuid.New()
			// Like, unlike, like again: each viewer nets exactly one.
			for j := 0; j < 3; j++ {
				if _, err := repo.TogglePostLike(ctx, viewer, post.ID, now); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetPost(ctx, uuid.New(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(viewers), got.LikesCount)
}

func TestExploreTieBreakIsDeterministic(t *testing.T) {
	repo := NewFeedRepository()
	ctx := context.Background()

	first := seedPost(t, repo, 10)
	second := seedPost(t, repo, 10)
	third := seedPost(t, repo, 25)

	want := []uuid.UUID{third.ID, first.ID, second.ID}
	if second.ID.String() < first.ID.String() {
		want = []uuid.UUID{third.ID, second.ID, first.ID}
	}

	for i := 0; i < 3; i++ {
		explore, err := repo.ListExplorePosts(ctx, uuid.New())
		require.NoError(t, err)
		got := []uuid.UUID{explore[0].ID, explore[1].ID, explore[2].ID}
		assert.Equal(t, want, got)
	}
}

func TestCreateCommentMaintainsCounters(t *testing.T) {
	repo := NewFeedRepository()
	ctx := context.Background()
	post := seedPost(t, repo, 0)

	parent, err := repo.CreateComment(ctx, models.Comment{
		ID:       uuid.New(),
		PostID:   post.ID,
		AuthorID: uuid.New(),
		Content:  "first",
	})
	require.NoError(t, err)

	_, err = repo.CreateComment(ctx, models.Comment{
		ID:              uuid.New(),
		PostID:          post.ID,
		AuthorID:        uuid.New(),
		ParentCommentID: &parent.ID,
		Content:         "reply",
	})
	require.NoError(t, err)

	got, err := repo.GetPost(ctx, uuid.New(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(2), got.CommentsCount)

	gotParent, err := repo.GetComment(ctx, uuid.New(), parent.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), gotParent.RepliesCount)
}

func TestCreateCommentUnknownTargets(t *testing.T) {
	repo := NewFeedRepository()
	ctx := context.Background()
	post := seedPost(t, repo, 0)

	_, err := repo.CreateComment(ctx, models.Comment{ID: uuid.New(), PostID: uuid.New(), Content: "orphan"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	missingParent := uuid.New()
	_, err = repo.CreateComment(ctx, models.Comment{
		ID:              uuid.New(),
		PostID:          post.ID,
		ParentCommentID: &missingParent,
		Content:         "reply to nothing",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestListCommentsEmptyThread(t *testing.T) {
	repo := NewFeedRepository()
	post := seedPost(t, repo, 0)

	thread, err := repo.ListComments(context.Background(), uuid.New(), post.ID)
	require.NoError(t, err)
	require.NotNil(t, thread)
	assert.Empty(t, thread)

	_, err = repo.ListComments(context.Background(), uuid.New(), uuid.New())
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestPostAndCommentLikesAreSeparate(t *testing.T) {
	repo := NewFeedRepository()
	ctx := context.Background()
	viewer := uuid.New()
	now := time.Now()
	post := seedPost(t, repo, 0)

	comment, err := repo.CreateComment(ctx, models.Comment{
		ID:       uuid.New(),
		PostID:   post.ID,
		AuthorID: uuid.New(),
		Content:  "first",
	})
	require.NoError(t, err)

	_, err = repo.TogglePostLike(ctx, viewer, post.ID, now)
	require.NoError(t, err)

	// Liking the post must not read as a like on the comment.
	gotComment, err := repo.GetComment(ctx, viewer, comment.ID)
	require.NoError(t, err)
	assert.False(t, gotComment.IsLikedByCurrentUser)
	assert.Equal(t, int32(0), gotComment.LikesCount)
}
