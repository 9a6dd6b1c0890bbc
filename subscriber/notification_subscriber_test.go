package subscriber

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instaclone-core/events"
	models "instaclone-core/model"
	"instaclone-core/repository"
)

func newTestSubscriber() (*NotificationSubscriber, repository.NotificationRepository) {
	repo := repository.NewNotificationRepository()
	return NewNotificationSubscriber(nil, repo, context.Background()), repo
}

func TestHandlePostLiked(t *testing.T) {
	sub, repo := newTestSubscriber()
	ctx := context.Background()

	owner := uuid.New()
	liker := uuid.New()
	postID := uuid.New()
	now := time.Date(2025, 1, 21, 12, 0, 0, 0, time.UTC)

	require.NoError(t, sub.HandlePostLiked(events.PostLikeToggledEvent{
		PostID:    postID,
		PostOwner: owner,
		LikedBy:   liker,
		Liked:     true,
		Timestamp: now,
	}))

	feed, err := repo.ListByRecipient(ctx, owner, models.NotificationFilterAll)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, models.NotificationTypeLike, feed[0].Type)
	assert.Equal(t, liker, *feed[0].ActorID)
	assert.Equal(t, postID, *feed[0].PostID)
	assert.Equal(t, "liked your photo.", feed[0].Message)
	assert.False(t, feed[0].IsRead)
}

func TestHandlePostLikedIgnoresUnlikeAndSelf(t *testing.T) {
	sub, repo := newTestSubscriber()
	ctx := context.Background()
	owner := uuid.New()

	// Unlike events never retract or create anything.
	require.NoError(t, sub.HandlePostLiked(events.PostLikeToggledEvent{
		PostID:    uuid.New(),
		PostOwner: owner,
		LikedBy:   uuid.New(),
		Liked:     false,
	}))

	// Liking your own photo stays silent.
	require.NoError(t, sub.HandlePostLiked(events.PostLikeToggledEvent{
		PostID:    uuid.New(),
		PostOwner: owner,
		LikedBy:   owner,
		Liked:     true,
	}))

	feed, err := repo.ListByRecipient(ctx, owner, models.NotificationFilterAll)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestHandlePostCommented(t *testing.T) {
	sub, repo := newTestSubscriber()
	ctx := context.Background()

	owner := uuid.New()
	commenter := uuid.New()

	require.NoError(t, sub.HandlePostCommented(events.PostCommentedEvent{
		PostID:      uuid.New(),
		PostOwner:   owner,
		CommentID:   uuid.New(),
		CommentedBy: commenter,
	}))

	feed, err := repo.ListByRecipient(ctx, owner, models.NotificationFilterAll)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, models.NotificationTypeComment, feed[0].Type)
	assert.Equal(t, "commented on your photo.", feed[0].Message)
}

func TestHandlePostCommentedReplyNotifiesParentAuthor(t *testing.T) {
	sub, repo := newTestSubscriber()
	ctx := context.Background()

	owner := uuid.New()
	parentAuthor := uuid.New()
	replier := uuid.New()
	parentID := uuid.New()

	require.NoError(t, sub.HandlePostCommented(events.PostCommentedEvent{
		PostID:      uuid.New(),
		PostOwner:   owner,
		CommentID:   uuid.New(),
		CommentedBy: replier,
		ParentID:    &parentID,
		ParentOwner: &parentAuthor,
	}))

	ownerFeed, err := repo.ListByRecipient(ctx, owner, models.NotificationFilterAll)
	require.NoError(t, err)
	require.Len(t, ownerFeed, 1)
	assert.Equal(t, models.NotificationTypeComment, ownerFeed[0].Type)

	parentFeed, err := repo.ListByRecipient(ctx, parentAuthor, models.NotificationFilterAll)
	require.NoError(t, err)
	require.Len(t, parentFeed, 1)
	assert.Equal(t, models.NotificationTypeCommentReply, parentFeed[0].Type)
	assert.Equal(t, "replied to your comment.", parentFeed[0].Message)
}

func TestHandlePostCommentedOwnPostReply(t *testing.T) {
	sub, repo := newTestSubscriber()
	ctx := context.Background()

	// The post owner replies to a commenter on their own post: no comment
	// notification for themselves, only the reply notification.
	owner := uuid.New()
	parentAuthor := uuid.New()

	require.NoError(t, sub.HandlePostCommented(events.PostCommentedEvent{
		PostID:      uuid.New(),
		PostOwner:   owner,
		CommentID:   uuid.New(),
		CommentedBy: owner,
		ParentOwner: &parentAuthor,
	}))

	ownerFeed, err := repo.ListByRecipient(ctx, owner, models.NotificationFilterAll)
	require.NoError(t, err)
	assert.Empty(t, ownerFeed)

	parentFeed, err := repo.ListByRecipient(ctx, parentAuthor, models.NotificationFilterAll)
	require.NoError(t, err)
	require.Len(t, parentFeed, 1)
	assert.Equal(t, models.NotificationTypeCommentReply, parentFeed[0].Type)
}

func TestHandlePostCommentedReplyToOwnComment(t *testing.T) {
	sub, repo := newTestSubscriber()
	ctx := context.Background()

	owner := uuid.New()
	commenter := uuid.New()

	// Replying under your own comment only notifies the post owner.
	require.NoError(t, sub.HandlePostCommented(events.PostCommentedEvent{
		PostID:      uuid.New(),
		PostOwner:   owner,
		CommentID:   uuid.New(),
		CommentedBy: commenter,
		ParentOwner: &commenter,
	}))

	commenterFeed, err := repo.ListByRecipient(ctx, commenter, models.NotificationFilterAll)
	require.NoError(t, err)
	assert.Empty(t, commenterFeed)

	ownerFeed, err := repo.ListByRecipient(ctx, owner, models.NotificationFilterAll)
	require.NoError(t, err)
	assert.Len(t, ownerFeed, 1)
}

func TestHandleCommentLiked(t *testing.T) {
	sub, repo := newTestSubscriber()
	ctx := context.Background()

	author := uuid.New()
	liker := uuid.New()
	commentID := uuid.New()

	require.NoError(t, sub.HandleCommentLiked(events.CommentLikedEvent{
		CommentID:    commentID,
		CommentOwner: author,
		LikedBy:      liker,
		Liked:        true,
	}))

	// Self-likes and unlikes stay silent.
	require.NoError(t, sub.HandleCommentLiked(events.CommentLikedEvent{
		CommentID:    commentID,
		CommentOwner: author,
		LikedBy:      author,
		Liked:        true,
	}))
	require.NoError(t, sub.HandleCommentLiked(events.CommentLikedEvent{
		CommentID:    commentID,
		CommentOwner: author,
		LikedBy:      liker,
		Liked:        false,
	}))

	feed, err := repo.ListByRecipient(ctx, author, models.NotificationFilterAll)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, models.NotificationTypeCommentLike, feed[0].Type)
	assert.Equal(t, commentID, *feed[0].CommentID)
	assert.Equal(t, "liked your comment.", feed[0].Message)
}
