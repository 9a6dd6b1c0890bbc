package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"instaclone-core/apperrors"
	"instaclone-core/events"
	models "instaclone-core/model"
	"instaclone-core/publisher"
	"instaclone-core/repository"
)

// FeedService is the state manager behind the home feed: posts in creation
// order, the stories tray, likes and comment threads. Every operation
// resolves viewer-relative fields for the caller and emits a domain event
// after the mutation commits.
type FeedService struct {
	feedRepo  repository.FeedRepository
	storyRepo repository.StoryRepository
	userRepo  repository.UserRepository
	publisher *publisher.EventPublisher
	clock     func() time.Time
}

func NewFeedService(
	feedRepo repository.FeedRepository,
	storyRepo repository.StoryRepository,
	userRepo repository.UserRepository,
	eventPublisher *publisher.EventPublisher,
	clock func() time.Time,
) *FeedService {
	if clock == nil {
		clock = time.Now
	}
	return &FeedService{
		feedRepo:  feedRepo,
		storyRepo: storyRepo,
		userRepo:  userRepo,
		publisher: eventPublisher,
		clock:     clock,
	}
}

// ListFeed returns the viewer's feed snapshot in insertion order.
func (s *FeedService) ListFeed(ctx context.Context, viewerID uuid.UUID) ([]models.Post, error) {
	return s.feedRepo.ListPosts(ctx, viewerID)
}

// ListExplore returns the explore grid, most liked posts first.
func (s *FeedService) ListExplore(ctx context.Context, viewerID uuid.UUID) ([]models.Post, error) {
	return s.feedRepo.ListExplorePosts(ctx, viewerID)
}

// CreatePost validates and appends a new post to the feed and bumps the
// author's post counter.
func (s *FeedService) CreatePost(ctx context.Context, authorID uuid.UUID, imageURL string, caption *string) (*models.Post, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, apperrors.InvalidArgument("image url is required")
	}
	if caption != nil && len([]rune(*caption)) > models.MaxCaptionLength {
		return nil, apperrors.InvalidArgument("caption exceeds %d characters", models.MaxCaptionLength)
	}

	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	post := models.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		ImageURL:  imageURL,
		Caption:   caption,
		CreatedAt: s.clock(),
	}

	created, err := s.feedRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementPostsCount(ctx, authorID); err != nil {
		log.Printf("failed to bump posts count for %s: %v", authorID, err)
	}

	s.publishEvent(func() error {
		return s.publisher.PublishPostCreated(events.PostCreatedEvent{
			PostID:    created.ID,
			AuthorID:  created.AuthorID,
			ImageURL:  created.ImageURL,
			Timestamp: created.CreatedAt,
		})
	})

	return created, nil
}

// ToggleLike flips the viewer's like on a post. The flag and the counter
// move together; two calls are a net no-op.
func (s *FeedService) ToggleLike(ctx context.Context, viewerID, postID uuid.UUID) (*models.Post, error) {
	post, err := s.feedRepo.TogglePostLike(ctx, viewerID, postID, s.clock())
	if err != nil {
		return nil, err
	}

	s.publishEvent(func() error {
		return s.publisher.PublishPostLikeToggled(events.PostLikeToggledEvent{
			PostID:     post.ID,
			PostOwner:  post.AuthorID,
			LikedBy:    viewerID,
			Liked:      post.IsLikedByCurrentUser,
			LikesCount: post.LikesCount,
			Timestamp:  s.clock(),
		})
	})

	return post, nil
}

// ToggleCommentLike mirrors ToggleLike against a comment.
func (s *FeedService) ToggleCommentLike(ctx context.Context, viewerID, commentID uuid.UUID) (*models.Comment, error) {
	comment, err := s.feedRepo.ToggleCommentLike(ctx, viewerID, commentID, s.clock())
	if err != nil {
		return nil, err
	}

	s.publishEvent(func() error {
		return s.publisher.PublishCommentLiked(events.CommentLikedEvent{
			CommentID:    comment.ID,
			CommentOwner: comment.AuthorID,
			LikedBy:      viewerID,
			Liked:        comment.IsLikedByCurrentUser,
			Timestamp:    s.clock(),
		})
	})

	return comment, nil
}

// AddComment creates a comment or a reply under a post.
func (s *FeedService) AddComment(ctx context.Context, viewerID, postID uuid.UUID, content string, parentCommentID *uuid.UUID) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.InvalidArgument("comment content is required")
	}

	post, err := s.feedRepo.GetPost(ctx, viewerID, postID)
	if err != nil {
		return nil, err
	}

	var parentOwner *uuid.UUID
	if parentCommentID != nil {
		parent, err := s.feedRepo.GetComment(ctx, viewerID, *parentCommentID)
		if err != nil {
			return nil, err
		}
		parentOwner = &parent.AuthorID
	}

	comment := models.Comment{
		ID:              uuid.New(),
		PostID:          postID,
		AuthorID:        viewerID,
		ParentCommentID: parentCommentID,
		Content:         content,
		CreatedAt:       s.clock(),
	}

	created, err := s.feedRepo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.publishEvent(func() error {
		return s.publisher.PublishPostCommented(events.PostCommentedEvent{
			PostID:      post.ID,
			PostOwner:   post.AuthorID,
			CommentID:   created.ID,
			CommentedBy: viewerID,
			ParentID:    parentCommentID,
			ParentOwner: parentOwner,
			Timestamp:   created.CreatedAt,
		})
	})

	return created, nil
}

// ListComments returns the comment thread for a post, replies nested.
func (s *FeedService) ListComments(ctx context.Context, viewerID, postID uuid.UUID) ([]models.Comment, error) {
	return s.feedRepo.ListComments(ctx, viewerID, postID)
}

// ListStories returns the stories tray for the viewer. Tray order is fixed
// at creation time; viewing a story does not move it.
func (s *FeedService) ListStories(ctx context.Context, viewerID uuid.UUID) ([]models.Story, error) {
	return s.storyRepo.ListStories(ctx, viewerID)
}

// MarkStoryViewed records that the viewer opened a story. Repeat views are
// no-ops and do not re-emit the event.
func (s *FeedService) MarkStoryViewed(ctx context.Context, viewerID, storyID uuid.UUID) error {
	firstView, err := s.storyRepo.MarkViewed(ctx, viewerID, storyID)
	if err != nil {
		return err
	}
	if !firstView {
		return nil
	}

	story, err := s.storyRepo.GetStory(ctx, viewerID, storyID)
	if err != nil {
		return err
	}

	s.publishEvent(func() error {
		return s.publisher.PublishStoryViewed(events.StoryViewedEvent{
			StoryID:   story.ID,
			OwnerID:   story.OwnerID,
			ViewedBy:  viewerID,
			Timestamp: s.clock(),
		})
	})

	return nil
}

// publishEvent fires an event after a committed mutation. Publishing is
// best effort: a broker failure never rolls back local state.
func (s *FeedService) publishEvent(publish func() error) {
	if s.publisher == nil {
		return
	}
	if err := publish(); err != nil {
		log.Printf("failed to publish event: %v", err)
	}
}
