package events

import (
	"time"

	"github.com/google/uuid"

	models "instaclone-core/model"
)

// Event subjects (topics)
const (
	SubjectPostCreated     = "post.created"
	SubjectPostLiked       = "post.liked"
	SubjectPostUnliked     = "post.unliked"
	SubjectPostCommented   = "post.commented"
	SubjectCommentLiked    = "comment.liked"
	SubjectStoryViewed     = "story.viewed"
	SubjectFollowRequested  = "follow.requested"
	SubjectFollowDecided    = "follow.decided"
	SubjectNotificationRead = "notification.read"
)

// PostCreatedEvent is published when a user creates a post
type PostCreatedEvent struct {
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	ImageURL  string    `json:"image_url"`
	Timestamp time.Time `json:"timestamp"`
}

// PostLikeToggledEvent is published on both subjects post.liked and
// post.unliked, distinguished by the Liked flag.
type PostLikeToggledEvent struct {
	PostID     uuid.UUID `json:"post_id"`
	PostOwner  uuid.UUID `json:"post_owner"`
	LikedBy    uuid.UUID `json:"liked_by"`
	Liked      bool      `json:"liked"`
	LikesCount int32     `json:"likes_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// PostCommentedEvent is published when a user comments on a post
type PostCommentedEvent struct {
	PostID      uuid.UUID  `json:"post_id"`
	PostOwner   uuid.UUID  `json:"post_owner"`
	CommentID   uuid.UUID  `json:"comment_id"`
	CommentedBy uuid.UUID  `json:"commented_by"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	ParentOwner *uuid.UUID `json:"parent_owner,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}

// CommentLikedEvent is published when a user likes a comment
type CommentLikedEvent struct {
	CommentID    uuid.UUID `json:"comment_id"`
	CommentOwner uuid.UUID `json:"comment_owner"`
	LikedBy      uuid.UUID `json:"liked_by"`
	Liked        bool      `json:"liked"`
	Timestamp    time.Time `json:"timestamp"`
}

// StoryViewedEvent is published the first time a viewer opens a story
type StoryViewedEvent struct {
	StoryID   uuid.UUID `json:"story_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	ViewedBy  uuid.UUID `json:"viewed_by"`
	Timestamp time.Time `json:"timestamp"`
}

// FollowRequestedEvent is published when a follow request is created
type FollowRequestedEvent struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FollowedID uuid.UUID `json:"followed_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// FollowDecidedEvent is published when a pending follow request is resolved
type FollowDecidedEvent struct {
	FollowerID uuid.UUID           `json:"follower_id"`
	FollowedID uuid.UUID           `json:"followed_id"`
	Status     models.FollowStatus `json:"status"`
	Timestamp  time.Time           `json:"timestamp"`
}

// NotificationReadEvent is published the first time a notification is read
type NotificationReadEvent struct {
	NotificationID uuid.UUID `json:"notification_id"`
	RecipientID    uuid.UUID `json:"recipient_id"`
	Timestamp      time.Time `json:"timestamp"`
}
