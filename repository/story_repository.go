package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"instaclone-core/apperrors"
	models "instaclone-core/model"
)

// StoryRepository owns the stories tray. Tray order is fixed when stories
// are inserted; marking a story viewed never reorders the tray. Viewed state
// is tracked per (viewer, story) pair and only ever moves false -> true.
type StoryRepository interface {
	CreateStory(ctx context.Context, story models.Story) (*models.Story, error)
	GetStory(ctx context.Context, viewerID, storyID uuid.UUID) (*models.Story, error)
	ListStories(ctx context.Context, viewerID uuid.UUID) ([]models.Story, error)
	MarkViewed(ctx context.Context, viewerID, storyID uuid.UUID) (bool, error)
}

type storyRepository struct {
	mu sync.RWMutex

	stories map[uuid.UUID]*models.Story
	order   []uuid.UUID
	viewed  map[uuid.UUID]map[uuid.UUID]struct{}
}

func NewStoryRepository() StoryRepository {
	return &storyRepository{
		stories: make(map[uuid.UUID]*models.Story),
		viewed:  make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

func (r *storyRepository) CreateStory(ctx context.Context, story models.Story) (*models.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stories[story.ID]; exists {
		return nil, apperrors.Conflict("story %s already exists", story.ID)
	}

	stored := story
	stored.IsViewed = false
	stored.IsOwnStory = false
	r.stories[story.ID] = &stored
	r.order = append(r.order, story.ID)

	created := stored
	return &created, nil
}

func (r *storyRepository) GetStory(ctx context.Context, viewerID, storyID uuid.UUID) (*models.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.stories[storyID]
	if !ok {
		return nil, apperrors.NotFound("story %s not found", storyID)
	}

	story := *stored
	_, seen := r.viewed[viewerID][storyID]
	story.IsViewed = seen
	story.IsOwnStory = story.OwnerID == viewerID
	return &story, nil
}

func (r *storyRepository) ListStories(ctx context.Context, viewerID uuid.UUID) ([]models.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tray := make([]models.Story, 0, len(r.order))
	for _, id := range r.order {
		story := *r.stories[id]
		_, seen := r.viewed[viewerID][id]
		story.IsViewed = seen
		story.IsOwnStory = story.OwnerID == viewerID
		tray = append(tray, story)
	}
	return tray, nil
}

// MarkViewed flips the viewed flag for the pair and reports whether this
// call was the first view.
func (r *storyRepository) MarkViewed(ctx context.Context, viewerID, storyID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stories[storyID]; !ok {
		return false, apperrors.NotFound("story %s not found", storyID)
	}

	seen, ok := r.viewed[viewerID]
	if !ok {
		seen = make(map[uuid.UUID]struct{})
		r.viewed[viewerID] = seen
	}
	if _, already := seen[storyID]; already {
		return false, nil
	}
	seen[storyID] = struct{}{}
	return true, nil
}
