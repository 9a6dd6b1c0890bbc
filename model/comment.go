package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID                   uuid.UUID  `json:"id"`
	PostID               uuid.UUID  `json:"post_id"`
	AuthorID             uuid.UUID  `json:"author_id"`
	ParentCommentID      *uuid.UUID `json:"parent_comment_id,omitempty"`
	Content              string     `json:"content"`
	CreatedAt            time.Time  `json:"created_at"`
	LikesCount           int32      `json:"likes_count"`
	RepliesCount         int32      `json:"replies_count"`
	IsLikedByCurrentUser bool       `json:"is_liked_by_current_user"`
	Replies              []Comment  `json:"replies,omitempty"`
}

// IsReply reports whether the comment belongs to a reply thread.
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}
