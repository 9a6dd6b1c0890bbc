package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	models "instaclone-core/model"
	"instaclone-core/service"
)

type SocialHandler struct {
	socialService *service.SocialGraphService
}

func NewSocialHandler(socialService *service.SocialGraphService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// GetUser handles GET /users/:userID
func (h *SocialHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	user, err := h.socialService.GetUser(c.Request.Context(), viewerID(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// RequestFollow handles POST /users/:userID/follow
func (h *SocialHandler) RequestFollow(c *gin.Context) {
	followedID, ok := pathID(c, "userID")
	if !ok {
		return
	}

	edge, err := h.socialService.RequestFollow(c.Request.Context(), viewerID(c), followedID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, edge)
}

type decideFollowRequest struct {
	Decision string `json:"decision" binding:"required,oneof=ACCEPT REJECT accept reject"`
}

// DecideFollow handles POST /follow-requests/:followerID/decision. The
// authenticated viewer is the followed side of the edge.
func (h *SocialHandler) DecideFollow(c *gin.Context) {
	followerID, ok := pathID(c, "followerID")
	if !ok {
		return
	}

	var req decideFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	decision := models.FollowDecision(strings.ToUpper(req.Decision))
	edge, err := h.socialService.DecideFollow(c.Request.Context(), viewerID(c), followerID, decision)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, edge)
}

// ListFollowRequests handles GET /follow-requests
func (h *SocialHandler) ListFollowRequests(c *gin.Context) {
	requests, err := h.socialService.ListFollowRequests(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, requests)
}

// ListNotifications handles GET /notifications?filter=unread
func (h *SocialHandler) ListNotifications(c *gin.Context) {
	filter := models.NotificationFilter(strings.ToUpper(c.DefaultQuery("filter", string(models.NotificationFilterAll))))

	notifications, err := h.socialService.ListNotifications(c.Request.Context(), viewerID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, notifications)
}

// MarkNotificationRead handles POST /notifications/:notificationID/read
func (h *SocialHandler) MarkNotificationRead(c *gin.Context) {
	notificationID, ok := pathID(c, "notificationID")
	if !ok {
		return
	}

	if err := h.socialService.MarkNotificationRead(c.Request.Context(), viewerID(c), notificationID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// MarkAllNotificationsRead handles POST /notifications/read-all
func (h *SocialHandler) MarkAllNotificationsRead(c *gin.Context) {
	flipped, err := h.socialService.MarkAllNotificationsRead(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"marked_read": flipped})
}

// UnreadCount handles GET /notifications/unread-count
func (h *SocialHandler) UnreadCount(c *gin.Context) {
	count, err := h.socialService.UnreadCount(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"unread_count": count})
}
