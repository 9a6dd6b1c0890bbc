package models

import (
	"time"

	"github.com/google/uuid"
)

// Like references exactly one target: a post or a comment, never both.
// The constructors below are the only way the rest of the codebase builds
// likes, so the exclusive-target rule holds by construction.
type Like struct {
	UserID    uuid.UUID  `json:"user_id"`
	PostID    *uuid.UUID `json:"post_id,omitempty"`
	CommentID *uuid.UUID `json:"comment_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewPostLike(userID, postID uuid.UUID, createdAt time.Time) Like {
	return Like{
		UserID:    userID,
		PostID:    &postID,
		CreatedAt: createdAt,
	}
}

func NewCommentLike(userID, commentID uuid.UUID, createdAt time.Time) Like {
	return Like{
		UserID:    userID,
		CommentID: &commentID,
		CreatedAt: createdAt,
	}
}

// TargetID returns the id of the liked entity.
func (l *Like) TargetID() uuid.UUID {
	if l.PostID != nil {
		return *l.PostID
	}
	if l.CommentID != nil {
		return *l.CommentID
	}
	return uuid.Nil
}
