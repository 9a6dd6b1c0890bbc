package models

import (
	"time"

	"github.com/google/uuid"
)

type FollowStatus string

const (
	FollowStatusPending  FollowStatus = "PENDING"
	FollowStatusAccepted FollowStatus = "ACCEPTED"
	FollowStatusRejected FollowStatus = "REJECTED"
)

type FollowDecision string

const (
	FollowDecisionAccept FollowDecision = "ACCEPT"
	FollowDecisionReject FollowDecision = "REJECT"
)

// Follow is the edge from a follower to the user being followed. The pair
// (FollowerID, FollowedID) identifies the edge. DecidedAt is set exactly
// when the edge leaves the pending state.
type Follow struct {
	FollowerID uuid.UUID    `json:"follower_id"`
	FollowedID uuid.UUID    `json:"followed_id"`
	Status     FollowStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	DecidedAt  *time.Time   `json:"decided_at,omitempty"`
}

// IsPending reports whether the edge is still awaiting a decision.
func (f *Follow) IsPending() bool {
	return f.Status == FollowStatusPending
}
