package subscriber

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"instaclone-core/events"
	models "instaclone-core/model"
	natsClient "instaclone-core/nats"
	"instaclone-core/repository"
)

// Notification messages composed from feed events.
const (
	messagePostLiked    = "liked your photo."
	messagePostComment  = "commented on your photo."
	messageCommentReply = "replied to your comment."
	messageCommentLiked = "liked your comment."
)

// NotificationSubscriber turns feed events into activity notifications.
// Self-actions never notify: liking your own photo stays silent.
type NotificationSubscriber struct {
	natsClient *natsClient.Client
	repo       repository.NotificationRepository
	ctx        context.Context

	subscriptions []*nats.Subscription
}

func NewNotificationSubscriber(
	natsClient *natsClient.Client,
	repo repository.NotificationRepository,
	ctx context.Context,
) *NotificationSubscriber {
	return &NotificationSubscriber{
		natsClient: natsClient,
		repo:       repo,
		ctx:        ctx,
	}
}

func (s *NotificationSubscriber) Start() error {
	if err := s.subscribe(events.SubjectPostLiked, s.onPostLiked); err != nil {
		return err
	}
	if err := s.subscribe(events.SubjectPostCommented, s.onPostCommented); err != nil {
		return err
	}
	if err := s.subscribe(events.SubjectCommentLiked, s.onCommentLiked); err != nil {
		return err
	}

	log.Println("Notification subscriber started successfully")
	return nil
}

func (s *NotificationSubscriber) Stop() {
	for _, sub := range s.subscriptions {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("Error unsubscribing: %v", err)
		}
	}
	s.subscriptions = nil
}

func (s *NotificationSubscriber) subscribe(subject string, handler nats.MsgHandler) error {
	sub, err := s.natsClient.Subscribe(subject, handler)
	if err != nil {
		return err
	}
	s.subscriptions = append(s.subscriptions, sub)
	return nil
}

func (s *NotificationSubscriber) onPostLiked(msg *nats.Msg) {
	var event events.PostLikeToggledEvent
	if err := natsClient.DecodeEvent(msg, &event); err != nil {
		log.Printf("Error decoding post liked event: %v", err)
		return
	}
	if err := s.HandlePostLiked(event); err != nil {
		log.Printf("Error handling post liked event: %v", err)
	}
}

func (s *NotificationSubscriber) onPostCommented(msg *nats.Msg) {
	var event events.PostCommentedEvent
	if err := natsClient.DecodeEvent(msg, &event); err != nil {
		log.Printf("Error decoding post commented event: %v", err)
		return
	}
	if err := s.HandlePostCommented(event); err != nil {
		log.Printf("Error handling post commented event: %v", err)
	}
}

func (s *NotificationSubscriber) onCommentLiked(msg *nats.Msg) {
	var event events.CommentLikedEvent
	if err := natsClient.DecodeEvent(msg, &event); err != nil {
		log.Printf("Error decoding comment liked event: %v", err)
		return
	}
	if err := s.HandleCommentLiked(event); err != nil {
		log.Printf("Error handling comment liked event: %v", err)
	}
}

// HandlePostLiked notifies the post owner about a new like. Unlike events
// carry Liked=false and are ignored rather than retracting the notification.
func (s *NotificationSubscriber) HandlePostLiked(event events.PostLikeToggledEvent) error {
	if !event.Liked || event.LikedBy == event.PostOwner {
		return nil
	}

	_, err := s.repo.Create(s.ctx, models.Notification{
		ID:          uuid.New(),
		RecipientID: event.PostOwner,
		Type:        models.NotificationTypeLike,
		ActorID:     &event.LikedBy,
		Message:     messagePostLiked,
		PostID:      &event.PostID,
		CreatedAt:   event.Timestamp,
	})
	return err
}

// HandlePostCommented notifies the post owner, and for replies the parent
// comment's author as well.
func (s *NotificationSubscriber) HandlePostCommented(event events.PostCommentedEvent) error {
	if event.CommentedBy != event.PostOwner {
		_, err := s.repo.Create(s.ctx, models.Notification{
			ID:          uuid.New(),
			RecipientID: event.PostOwner,
			Type:        models.NotificationTypeComment,
			ActorID:     &event.CommentedBy,
			Message:     messagePostComment,
			PostID:      &event.PostID,
			CommentID:   &event.CommentID,
			CreatedAt:   event.Timestamp,
		})
		if err != nil {
			return err
		}
	}

	if event.ParentOwner == nil || event.CommentedBy == *event.ParentOwner {
		return nil
	}

	_, err := s.repo.Create(s.ctx, models.Notification{
		ID:          uuid.New(),
		RecipientID: *event.ParentOwner,
		Type:        models.NotificationTypeCommentReply,
		ActorID:     &event.CommentedBy,
		Message:     messageCommentReply,
		PostID:      &event.PostID,
		CommentID:   &event.CommentID,
		CreatedAt:   event.Timestamp,
	})
	return err
}

// HandleCommentLiked notifies the comment author about a new like.
func (s *NotificationSubscriber) HandleCommentLiked(event events.CommentLikedEvent) error {
	if !event.Liked || event.LikedBy == event.CommentOwner {
		return nil
	}

	_, err := s.repo.Create(s.ctx, models.Notification{
		ID:          uuid.New(),
		RecipientID: event.CommentOwner,
		Type:        models.NotificationTypeCommentLike,
		ActorID:     &event.LikedBy,
		Message:     messageCommentLiked,
		CommentID:   &event.CommentID,
		CreatedAt:   event.Timestamp,
	})
	return err
}
