package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxCaptionLength is the upper bound for a post caption.
const MaxCaptionLength = 2200

type Post struct {
	ID                   uuid.UUID `json:"id"`
	AuthorID             uuid.UUID `json:"author_id"`
	ImageURL             string    `json:"image_url"`
	Caption              *string   `json:"caption,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	LikesCount           int32     `json:"likes_count"`
	CommentsCount        int32     `json:"comments_count"`
	IsLikedByCurrentUser bool      `json:"is_liked_by_current_user"`
}
