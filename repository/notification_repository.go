package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"instaclone-core/apperrors"
	models "instaclone-core/model"
)

// NotificationRepository owns a user's activity feed. Read state is
// monotonic: once a notification is read it never flips back.
type NotificationRepository interface {
	Create(ctx context.Context, notification models.Notification) (*models.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, filter models.NotificationFilter) ([]models.Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error)
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int32, error)
}

type notificationRepository struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]*models.Notification
	byRecipient   map[uuid.UUID][]uuid.UUID
}

func NewNotificationRepository() NotificationRepository {
	return &notificationRepository{
		notifications: make(map[uuid.UUID]*models.Notification),
		byRecipient:   make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notifications[notification.ID]; exists {
		return nil, apperrors.Conflict("notification %s already exists", notification.ID)
	}

	stored := notification
	r.notifications[notification.ID] = &stored
	r.byRecipient[notification.RecipientID] = append(r.byRecipient[notification.RecipientID], notification.ID)

	created := stored
	return &created, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notification, ok := r.notifications[id]
	if !ok {
		return nil, apperrors.NotFound("notification %s not found", id)
	}

	snapshot := *notification
	return &snapshot, nil
}

// ListByRecipient returns notifications most recent first; equal timestamps
// are ordered by ascending id so pagination stays deterministic.
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, filter models.NotificationFilter) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Notification{}
	for _, id := range r.byRecipient[recipientID] {
		notification := *r.notifications[id]
		if filter == models.NotificationFilterUnread && notification.IsRead {
			continue
		}
		result = append(result, notification)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

// MarkRead sets the read flag and reports whether this call flipped it.
// Re-reading an already read notification is a no-op, and a recipient can
// only touch their own notifications.
func (r *notificationRepository) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notification, ok := r.notifications[notificationID]
	if !ok {
		return false, apperrors.NotFound("notification %s not found", notificationID)
	}
	if notification.RecipientID != recipientID {
		return false, apperrors.Forbidden("notification %s does not belong to user %s", notificationID, recipientID)
	}

	if notification.IsRead {
		return false, nil
	}
	notification.IsRead = true
	return true, nil
}

// MarkAllRead marks every unread notification for the recipient and returns
// how many were flipped.
func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flipped := 0
	for _, id := range r.byRecipient[recipientID] {
		if notification := r.notifications[id]; !notification.IsRead {
			notification.IsRead = true
			flipped++
		}
	}
	return flipped, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int32
	for _, id := range r.byRecipient[recipientID] {
		if !r.notifications[id].IsRead {
			count++
		}
	}
	return count, nil
}
