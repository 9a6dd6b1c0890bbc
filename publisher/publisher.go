package publisher

import (
	"encoding/json"
	"log"

	"instaclone-core/events"
)

// Publisher is the transport the event publisher writes to. The NATS client
// satisfies it; tests plug in a capture fake and cmd falls back to Noop when
// no broker is configured.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Noop discards every event. Used when the core runs without a broker.
type Noop struct{}

func (Noop) Publish(subject string, data []byte) error { return nil }

type EventPublisher struct {
	pub Publisher
}

func NewEventPublisher(pub Publisher) *EventPublisher {
	if pub == nil {
		pub = Noop{}
	}
	return &EventPublisher{pub: pub}
}

func (p *EventPublisher) PublishPostCreated(event events.PostCreatedEvent) error {
	return p.publish(events.SubjectPostCreated, event)
}

func (p *EventPublisher) PublishPostLikeToggled(event events.PostLikeToggledEvent) error {
	subject := events.SubjectPostLiked
	if !event.Liked {
		subject = events.SubjectPostUnliked
	}
	return p.publish(subject, event)
}

func (p *EventPublisher) PublishPostCommented(event events.PostCommentedEvent) error {
	return p.publish(events.SubjectPostCommented, event)
}

func (p *EventPublisher) PublishCommentLiked(event events.CommentLikedEvent) error {
	return p.publish(events.SubjectCommentLiked, event)
}

func (p *EventPublisher) PublishStoryViewed(event events.StoryViewedEvent) error {
	return p.publish(events.SubjectStoryViewed, event)
}

func (p *EventPublisher) PublishFollowRequested(event events.FollowRequestedEvent) error {
	return p.publish(events.SubjectFollowRequested, event)
}

func (p *EventPublisher) PublishFollowDecided(event events.FollowDecidedEvent) error {
	return p.publish(events.SubjectFollowDecided, event)
}

func (p *EventPublisher) PublishNotificationRead(event events.NotificationReadEvent) error {
	return p.publish(events.SubjectNotificationRead, event)
}

func (p *EventPublisher) publish(subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.pub.Publish(subject, data); err != nil {
		return err
	}

	log.Printf("Published event: %s", subject)
	return nil
}
