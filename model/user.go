package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID     `json:"id"`
	UserName          string        `json:"user_name"`
	FullName          string        `json:"full_name"`
	Email             string        `json:"email"`
	ProfilePictureURL *string       `json:"profile_picture_url,omitempty"`
	Bio               *string       `json:"bio,omitempty"`
	WebsiteURL        *string       `json:"website_url,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	PostsCount        int32         `json:"posts_count"`
	FollowersCount    int32         `json:"followers_count"`
	FollowingCount    int32         `json:"following_count"`
	IsFollowing       bool          `json:"is_following"`
	FollowStatus      *FollowStatus `json:"follow_status,omitempty"`
}

// UserSummary is the compact projection embedded in feed items,
// search results and notifications.
type UserSummary struct {
	ID                uuid.UUID `json:"id"`
	UserName          string    `json:"user_name"`
	FullName          string    `json:"full_name"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:                u.ID,
		UserName:          u.UserName,
		FullName:          u.FullName,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}
