package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"instaclone-core/apperrors"
	"instaclone-core/events"
	models "instaclone-core/model"
	"instaclone-core/publisher"
	"instaclone-core/repository"
)

// Notification messages shown on the activity screen.
const (
	messageFollowRequested = "requested to follow you."
	messageFollowAccepted  = "accepted your follow request."
)

// SocialGraphService is the state manager for follow edges and the activity
// feed. Follow requests and their decisions create notifications
// synchronously; like and comment notifications arrive through the event
// subscriber instead.
type SocialGraphService struct {
	followRepo       repository.FollowRepository
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	publisher        *publisher.EventPublisher
	clock            func() time.Time
}

func NewSocialGraphService(
	followRepo repository.FollowRepository,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	eventPublisher *publisher.EventPublisher,
	clock func() time.Time,
) *SocialGraphService {
	if clock == nil {
		clock = time.Now
	}
	return &SocialGraphService{
		followRepo:       followRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		publisher:        eventPublisher,
		clock:            clock,
	}
}

// RequestFollow creates a pending follow edge and notifies the followed
// user. Re-requesting after a rejection starts a fresh cycle; any other
// existing edge is a conflict.
func (s *SocialGraphService) RequestFollow(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follow, error) {
	if followerID == followedID {
		return nil, apperrors.InvalidArgument("users cannot follow themselves")
	}
	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return nil, err
	}

	edge, err := s.followRepo.Request(ctx, followerID, followedID, s.clock())
	if err != nil {
		return nil, err
	}

	s.createNotification(ctx, models.Notification{
		ID:          uuid.New(),
		RecipientID: followedID,
		Type:        models.NotificationTypeFollowRequest,
		ActorID:     &followerID,
		Message:     messageFollowRequested,
		CreatedAt:   edge.CreatedAt,
	})

	s.publishEvent(func() error {
		return s.publisher.PublishFollowRequested(events.FollowRequestedEvent{
			FollowerID: followerID,
			FollowedID: followedID,
			Timestamp:  edge.CreatedAt,
		})
	})

	return edge, nil
}

// DecideFollow resolves a pending request. Accepting bumps both follower
// counters and notifies the requester.
func (s *SocialGraphService) DecideFollow(ctx context.Context, followedID, followerID uuid.UUID, decision models.FollowDecision) (*models.Follow, error) {
	edge, err := s.followRepo.Decide(ctx, followerID, followedID, decision, s.clock())
	if err != nil {
		return nil, err
	}

	if edge.Status == models.FollowStatusAccepted {
		if err := s.userRepo.ApplyFollowAccepted(ctx, followerID, followedID); err != nil {
			log.Printf("failed to apply follow counters for %s -> %s: %v", followerID, followedID, err)
		}

		s.createNotification(ctx, models.Notification{
			ID:          uuid.New(),
			RecipientID: followerID,
			Type:        models.NotificationTypeFollow,
			ActorID:     &followedID,
			Message:     messageFollowAccepted,
			CreatedAt:   *edge.DecidedAt,
		})
	}

	s.publishEvent(func() error {
		return s.publisher.PublishFollowDecided(events.FollowDecidedEvent{
			FollowerID: followerID,
			FollowedID: followedID,
			Status:     edge.Status,
			Timestamp:  *edge.DecidedAt,
		})
	})

	return edge, nil
}

// GetUser returns a user profile with the viewer-relative follow fields
// resolved: FollowStatus reflects the viewer's edge toward the user and
// IsFollowing is true only once that edge is accepted.
func (s *SocialGraphService) GetUser(ctx context.Context, viewerID, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edge, err := s.followRepo.Get(ctx, viewerID, userID)
	switch {
	case err == nil:
		user.FollowStatus = &edge.Status
		user.IsFollowing = edge.Status == models.FollowStatusAccepted
	case apperrors.IsKind(err, apperrors.KindNotFound):
	default:
		return nil, err
	}

	return user, nil
}

// ListFollowRequests returns the viewer's incoming pending requests,
// oldest first.
func (s *SocialGraphService) ListFollowRequests(ctx context.Context, followedID uuid.UUID) ([]models.Follow, error) {
	return s.followRepo.ListPendingFor(ctx, followedID)
}

// ListNotifications returns the activity feed, most recent first.
func (s *SocialGraphService) ListNotifications(ctx context.Context, recipientID uuid.UUID, filter models.NotificationFilter) ([]models.Notification, error) {
	switch filter {
	case models.NotificationFilterAll, models.NotificationFilterUnread:
	case "":
		filter = models.NotificationFilterAll
	default:
		return nil, apperrors.InvalidArgument("unknown notification filter %q", filter)
	}
	return s.notificationRepo.ListByRecipient(ctx, recipientID, filter)
}

// MarkNotificationRead flips a notification to read. Reading twice is a
// no-op and does not re-emit the event; reading someone else's notification
// is forbidden.
func (s *SocialGraphService) MarkNotificationRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	flipped, err := s.notificationRepo.MarkRead(ctx, recipientID, notificationID)
	if err != nil {
		return err
	}
	if !flipped {
		return nil
	}

	s.publishEvent(func() error {
		return s.publisher.PublishNotificationRead(events.NotificationReadEvent{
			NotificationID: notificationID,
			RecipientID:    recipientID,
			Timestamp:      s.clock(),
		})
	})

	return nil
}

// MarkAllNotificationsRead marks every unread notification for the viewer.
func (s *SocialGraphService) MarkAllNotificationsRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	return s.notificationRepo.MarkAllRead(ctx, recipientID)
}

// UnreadCount returns the badge count for the activity tab.
func (s *SocialGraphService) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int32, error) {
	return s.notificationRepo.UnreadCount(ctx, recipientID)
}

func (s *SocialGraphService) createNotification(ctx context.Context, notification models.Notification) {
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("failed to create notification for %s: %v", notification.RecipientID, err)
	}
}

func (s *SocialGraphService) publishEvent(publish func() error) {
	if s.publisher == nil {
		return
	}
	if err := publish(); err != nil {
		log.Printf("failed to publish event: %v", err)
	}
}
