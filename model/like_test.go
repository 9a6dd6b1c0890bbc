package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLikeTargetsExactlyOneEntity(t *testing.T) {
	user := uuid.New()
	target := uuid.New()
	now := time.Now()

	postLike := NewPostLike(user, target, now)
	assert.NotNil(t, postLike.PostID)
	assert.Nil(t, postLike.CommentID)
	assert.Equal(t, target, postLike.TargetID())

	commentLike := NewCommentLike(user, target, now)
	assert.Nil(t, commentLike.PostID)
	assert.NotNil(t, commentLike.CommentID)
	assert.Equal(t, target, commentLike.TargetID())
}

func TestCommentIsReply(t *testing.T) {
	parent := uuid.New()

	topLevel := Comment{ID: uuid.New()}
	assert.False(t, topLevel.IsReply())

	reply := Comment{ID: uuid.New(), ParentCommentID: &parent}
	assert.True(t, reply.IsReply())
}
