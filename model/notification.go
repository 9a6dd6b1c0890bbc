package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeLike          NotificationType = "LIKE"
	NotificationTypeComment       NotificationType = "COMMENT"
	NotificationTypeFollow        NotificationType = "FOLLOW"
	NotificationTypeFollowRequest NotificationType = "FOLLOW_REQUEST"
	NotificationTypeCommentLike   NotificationType = "COMMENT_LIKE"
	NotificationTypeCommentReply  NotificationType = "COMMENT_REPLY"
)

// NotificationFilter narrows a notification listing.
type NotificationFilter string

const (
	NotificationFilterAll    NotificationFilter = "ALL"
	NotificationFilterUnread NotificationFilter = "UNREAD"
)

type Notification struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID uuid.UUID        `json:"recipient_id"`
	Type        NotificationType `json:"type"`
	ActorID     *uuid.UUID       `json:"actor_id,omitempty"`
	Message     string           `json:"message"`
	PostID      *uuid.UUID       `json:"post_id,omitempty"`
	CommentID   *uuid.UUID       `json:"comment_id,omitempty"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
