package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"instaclone-core/apperrors"
	models "instaclone-core/model"
)

// UserRepository owns user records and their derived counters. Listing
// preserves insertion order, which is the suggestion order the search screen
// renders before any query is typed.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	IncrementPostsCount(ctx context.Context, userID uuid.UUID) error
	ApplyFollowAccepted(ctx context.Context, followerID, followedID uuid.UUID) error
}

type userRepository struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*models.User
	byUsername map[string]uuid.UUID
	order      []uuid.UUID
}

func NewUserRepository() UserRepository {
	return &userRepository{
		users:      make(map[uuid.UUID]*models.User),
		byUsername: make(map[string]uuid.UUID),
	}
}

func (r *userRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return nil, apperrors.Conflict("user %s already exists", user.ID)
	}
	if _, taken := r.byUsername[user.UserName]; taken {
		return nil, apperrors.Conflict("username %q is taken", user.UserName)
	}

	stored := user
	r.users[user.ID] = &stored
	r.byUsername[user.UserName] = user.ID
	r.order = append(r.order, user.ID)

	created := stored
	return &created, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, apperrors.NotFound("user %s not found", userID)
	}

	snapshot := *user
	return &snapshot, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, apperrors.NotFound("user %q not found", username)
	}

	snapshot := *r.users[id]
	return &snapshot, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, *r.users[id])
	}
	return users, nil
}

func (r *userRepository) IncrementPostsCount(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return apperrors.NotFound("user %s not found", userID)
	}
	user.PostsCount++
	return nil
}

// ApplyFollowAccepted bumps both sides of an accepted follow edge in one
// critical section.
func (r *userRepository) ApplyFollowAccepted(ctx context.Context, followerID, followedID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	follower, ok := r.users[followerID]
	if !ok {
		return apperrors.NotFound("user %s not found", followerID)
	}
	followed, ok := r.users[followedID]
	if !ok {
		return apperrors.NotFound("user %s not found", followedID)
	}

	follower.FollowingCount++
	followed.FollowersCount++
	return nil
}
