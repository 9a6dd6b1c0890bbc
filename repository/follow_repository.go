package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"instaclone-core/apperrors"
	models "instaclone-core/model"
)

// FollowRepository owns follow edges. An edge is identified by the
// (follower, followed) pair and follows a one-way lifecycle:
// pending -> accepted | rejected, with a rejected edge allowed to start a
// fresh pending cycle.
type FollowRepository interface {
	Request(ctx context.Context, followerID, followedID uuid.UUID, now time.Time) (*models.Follow, error)
	Decide(ctx context.Context, followerID, followedID uuid.UUID, decision models.FollowDecision, now time.Time) (*models.Follow, error)
	Get(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follow, error)
	ListPendingFor(ctx context.Context, followedID uuid.UUID) ([]models.Follow, error)
}

type followKey struct {
	followerID uuid.UUID
	followedID uuid.UUID
}

type followRepository struct {
	mu    sync.RWMutex
	edges map[followKey]*models.Follow
}

func NewFollowRepository() FollowRepository {
	return &followRepository{
		edges: make(map[followKey]*models.Follow),
	}
}

// Request creates a pending edge. A duplicate request is a conflict unless
// the existing edge was rejected, in which case a new cycle starts with a
// fresh creation time and no decision timestamp.
func (r *followRepository) Request(ctx context.Context, followerID, followedID uuid.UUID, now time.Time) (*models.Follow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := followKey{followerID: followerID, followedID: followedID}
	if existing, ok := r.edges[key]; ok && existing.Status != models.FollowStatusRejected {
		return nil, apperrors.Conflict("follow relationship already %s", existing.Status)
	}

	edge := &models.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
		Status:     models.FollowStatusPending,
		CreatedAt:  now,
	}
	r.edges[key] = edge

	snapshot := *edge
	return &snapshot, nil
}

// Decide moves a pending edge to accepted or rejected and stamps the
// decision time. The status never regresses.
func (r *followRepository) Decide(ctx context.Context, followerID, followedID uuid.UUID, decision models.FollowDecision, now time.Time) (*models.Follow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	edge, ok := r.edges[followKey{followerID: followerID, followedID: followedID}]
	if !ok {
		return nil, apperrors.NotFound("no follow request from %s to %s", followerID, followedID)
	}
	if !edge.IsPending() {
		return nil, apperrors.InvalidState("follow request already %s", edge.Status)
	}

	switch decision {
	case models.FollowDecisionAccept:
		edge.Status = models.FollowStatusAccepted
	case models.FollowDecisionReject:
		edge.Status = models.FollowStatusRejected
	default:
		return nil, apperrors.InvalidArgument("unknown follow decision %q", decision)
	}
	decidedAt := now
	edge.DecidedAt = &decidedAt

	snapshot := *edge
	return &snapshot, nil
}

func (r *followRepository) Get(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	edge, ok := r.edges[followKey{followerID: followerID, followedID: followedID}]
	if !ok {
		return nil, apperrors.NotFound("no follow relationship from %s to %s", followerID, followedID)
	}

	snapshot := *edge
	return &snapshot, nil
}

// ListPendingFor returns incoming pending requests for a user, oldest first.
func (r *followRepository) ListPendingFor(ctx context.Context, followedID uuid.UUID) ([]models.Follow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pending := []models.Follow{}
	for _, edge := range r.edges {
		if edge.FollowedID == followedID && edge.IsPending() {
			pending = append(pending, *edge)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		if !pending[i].CreatedAt.Equal(pending[j].CreatedAt) {
			return pending[i].CreatedAt.Before(pending[j].CreatedAt)
		}
		return pending[i].FollowerID.String() < pending[j].FollowerID.String()
	})
	return pending, nil
}
