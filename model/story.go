package models

import "github.com/google/uuid"

// Story is a single entry in the stories tray. IsViewed and IsOwnStory are
// resolved per viewer when the tray is listed; HasNewStory is a property of
// the story itself.
type Story struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	HasNewStory       bool      `json:"has_new_story"`
	IsViewed          bool      `json:"is_viewed"`
	IsOwnStory        bool      `json:"is_own_story"`
}
