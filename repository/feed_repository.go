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

// FeedRepository owns the post aggregate: posts in feed order, their
// comments, and the like rows against posts and comments. Every mutation
// completes under a single lock acquisition so counters and like rows are
// never observed out of sync.
type FeedRepository interface {
	CreatePost(ctx context.Context, post models.Post) (*models.Post, error)
	GetPost(ctx context.Context, viewerID, postID uuid.UUID) (*models.Post, error)
	ListPosts(ctx context.Context, viewerID uuid.UUID) ([]models.Post, error)
	ListExplorePosts(ctx context.Context, viewerID uuid.UUID) ([]models.Post, error)
	TogglePostLike(ctx context.Context, viewerID, postID uuid.UUID, now time.Time) (*models.Post, error)
	ToggleCommentLike(ctx context.Context, viewerID, commentID uuid.UUID, now time.Time) (*models.Comment, error)
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)
	GetComment(ctx context.Context, viewerID, commentID uuid.UUID) (*models.Comment, error)
	ListComments(ctx context.Context, viewerID, postID uuid.UUID) ([]models.Comment, error)
}

type likeKey struct {
	userID   uuid.UUID
	targetID uuid.UUID
	comment  bool
}

type feedRepository struct {
	mu sync.RWMutex

	posts     map[uuid.UUID]*models.Post
	postOrder []uuid.UUID

	comments       map[uuid.UUID]*models.Comment
	commentsByPost map[uuid.UUID][]uuid.UUID

	likes map[likeKey]models.Like
}

func NewFeedRepository() FeedRepository {
	return &feedRepository{
		posts:          make(map[uuid.UUID]*models.Post),
		comments:       make(map[uuid.UUID]*models.Comment),
		commentsByPost: make(map[uuid.UUID][]uuid.UUID),
		likes:          make(map[likeKey]models.Like),
	}
}

// CreatePost appends a post to the feed. Feed order is creation order and is
// never rearranged afterwards.
func (r *feedRepository) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.ID]; exists {
		return nil, apperrors.Conflict("post %s already exists", post.ID)
	}

	stored := post
	stored.IsLikedByCurrentUser = false
	r.posts[post.ID] = &stored
	r.postOrder = append(r.postOrder, post.ID)

	created := stored
	return &created, nil
}

func (r *feedRepository) GetPost(ctx context.Context, viewerID, postID uuid.UUID) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[postID]
	if !ok {
		return nil, apperrors.NotFound("post %s not found", postID)
	}

	resolved := r.resolvePost(post, viewerID)
	return &resolved, nil
}

// ListPosts returns a snapshot of the feed in insertion order with
// viewer-relative like status resolved.
func (r *feedRepository) ListPosts(ctx context.Context, viewerID uuid.UUID) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feed := make([]models.Post, 0, len(r.postOrder))
	for _, id := range r.postOrder {
		feed = append(feed, r.resolvePost(r.posts[id], viewerID))
	}
	return feed, nil
}

// ListExplorePosts returns the explore grid: most liked posts first, ties
// broken by ascending id for a deterministic layout.
func (r *feedRepository) ListExplorePosts(ctx context.Context, viewerID uuid.UUID) ([]models.Post, error) {
	posts, err := r.ListPosts(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].LikesCount != posts[j].LikesCount {
			return posts[i].LikesCount > posts[j].LikesCount
		}
		return posts[i].ID.String() < posts[j].ID.String()
	})
	return posts, nil
}

// TogglePostLike flips the viewer's like on a post and adjusts the counter
// by exactly one in the same critical section.
func (r *feedRepository) TogglePostLike(ctx context.Context, viewerID, postID uuid.UUID, now time.Time) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return nil, apperrors.NotFound("post %s not found", postID)
	}

	key := likeKey{userID: viewerID, targetID: postID}
	if _, liked := r.likes[key]; liked {
		delete(r.likes, key)
		post.LikesCount--
	} else {
		r.likes[key] = models.NewPostLike(viewerID, postID, now)
		post.LikesCount++
	}

	resolved := r.resolvePost(post, viewerID)
	return &resolved, nil
}

// ToggleCommentLike flips the viewer's like on a comment, mirroring
// TogglePostLike.
func (r *feedRepository) ToggleCommentLike(ctx context.Context, viewerID, commentID uuid.UUID, now time.Time) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[commentID]
	if !ok {
		return nil, apperrors.NotFound("comment %s not found", commentID)
	}

	key := likeKey{userID: viewerID, targetID: commentID, comment: true}
	if _, liked := r.likes[key]; liked {
		delete(r.likes, key)
		comment.LikesCount--
	} else {
		r.likes[key] = models.NewCommentLike(viewerID, commentID, now)
		comment.LikesCount++
	}

	resolved := r.resolveComment(comment, viewerID)
	return &resolved, nil
}

// CreateComment stores a comment and maintains the post's comment counter
// and, for replies, the parent's reply counter. A reply must target a
// comment on the same post, which keeps reply chains a tree.
func (r *feedRepository) CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[comment.PostID]
	if !ok {
		return nil, apperrors.NotFound("post %s not found", comment.PostID)
	}

	if comment.ParentCommentID != nil {
		parent, ok := r.comments[*comment.ParentCommentID]
		if !ok {
			return nil, apperrors.NotFound("parent comment %s not found", *comment.ParentCommentID)
		}
		if parent.PostID != comment.PostID {
			return nil, apperrors.InvalidArgument("parent comment belongs to a different post")
		}
		parent.RepliesCount++
	}

	stored := comment
	stored.IsLikedByCurrentUser = false
	stored.Replies = nil
	r.comments[comment.ID] = &stored
	r.commentsByPost[comment.PostID] = append(r.commentsByPost[comment.PostID], comment.ID)
	post.CommentsCount++

	created := stored
	return &created, nil
}

func (r *feedRepository) GetComment(ctx context.Context, viewerID, commentID uuid.UUID) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[commentID]
	if !ok {
		return nil, apperrors.NotFound("comment %s not found", commentID)
	}

	resolved := r.resolveComment(comment, viewerID)
	return &resolved, nil
}

// ListComments returns top-level comments in creation order, with replies
// nested under their parent in creation order.
func (r *feedRepository) ListComments(ctx context.Context, viewerID, postID uuid.UUID) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.posts[postID]; !ok {
		return nil, apperrors.NotFound("post %s not found", postID)
	}

	var topLevel []models.Comment
	children := make(map[uuid.UUID][]models.Comment)

	for _, id := range r.commentsByPost[postID] {
		comment := r.resolveComment(r.comments[id], viewerID)
		if !comment.IsReply() {
			topLevel = append(topLevel, comment)
			continue
		}
		children[*comment.ParentCommentID] = append(children[*comment.ParentCommentID], comment)
	}

	for i := range topLevel {
		topLevel[i] = nestReplies(topLevel[i], children)
	}
	if topLevel == nil {
		topLevel = []models.Comment{}
	}
	return topLevel, nil
}

// nestReplies attaches reply threads depth-first. Reply chains are acyclic
// because CreateComment only accepts parents that already exist.
func nestReplies(comment models.Comment, children map[uuid.UUID][]models.Comment) models.Comment {
	replies := children[comment.ID]
	for i := range replies {
		replies[i] = nestReplies(replies[i], children)
	}
	comment.Replies = replies
	return comment
}

func (r *feedRepository) resolvePost(post *models.Post, viewerID uuid.UUID) models.Post {
	resolved := *post
	_, liked := r.likes[likeKey{userID: viewerID, targetID: post.ID}]
	resolved.IsLikedByCurrentUser = liked
	return resolved
}

func (r *feedRepository) resolveComment(comment *models.Comment, viewerID uuid.UUID) models.Comment {
	resolved := *comment
	_, liked := r.likes[likeKey{userID: viewerID, targetID: comment.ID, comment: true}]
	resolved.IsLikedByCurrentUser = liked
	resolved.Replies = nil
	return resolved
}
