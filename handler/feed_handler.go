package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"instaclone-core/service"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// ListFeed handles GET /feed
func (h *FeedHandler) ListFeed(c *gin.Context) {
	posts, err := h.feedService.ListFeed(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, posts)
}

// ListExplore handles GET /explore
func (h *FeedHandler) ListExplore(c *gin.Context) {
	posts, err := h.feedService.ListExplore(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, posts)
}

type createPostRequest struct {
	ImageURL string  `json:"image_url" binding:"required,url"`
	Caption  *string `json:"caption" binding:"omitempty,max=2200"`
}

// CreatePost handles POST /posts
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	post, err := h.feedService.CreatePost(c.Request.Context(), viewerID(c), req.ImageURL, req.Caption)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, post)
}

// ToggleLike handles POST /posts/:postID/like
func (h *FeedHandler) ToggleLike(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}

	post, err := h.feedService.ToggleLike(c.Request.Context(), viewerID(c), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, post)
}

type addCommentRequest struct {
	Content         string     `json:"content" binding:"required,max=2200"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id"`
}

// AddComment handles POST /posts/:postID/comments
func (h *FeedHandler) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	comment, err := h.feedService.AddComment(c.Request.Context(), viewerID(c), postID, req.Content, req.ParentCommentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, comment)
}

// ListComments handles GET /posts/:postID/comments
func (h *FeedHandler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}

	comments, err := h.feedService.ListComments(c.Request.Context(), viewerID(c), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comments)
}

// ToggleCommentLike handles POST /comments/:commentID/like
func (h *FeedHandler) ToggleCommentLike(c *gin.Context) {
	commentID, ok := pathID(c, "commentID")
	if !ok {
		return
	}

	comment, err := h.feedService.ToggleCommentLike(c.Request.Context(), viewerID(c), commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comment)
}

// ListStories handles GET /stories
func (h *FeedHandler) ListStories(c *gin.Context) {
	stories, err := h.feedService.ListStories(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stories)
}

// MarkStoryViewed handles POST /stories/:storyID/view
func (h *FeedHandler) MarkStoryViewed(c *gin.Context) {
	storyID, ok := pathID(c, "storyID")
	if !ok {
		return
	}

	if err := h.feedService.MarkStoryViewed(c.Request.Context(), viewerID(c), storyID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
