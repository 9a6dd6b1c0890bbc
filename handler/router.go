package handler

import (
	"log"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"instaclone-core/pkg/jwt"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]{1,30}$`)

// registerValidations installs the custom binding rules request DTOs use.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		log.Printf("failed to register username validation: %v", err)
	}
}

// RegisterRoutes wires the call surface onto a gin router. Everything except
// login sits behind the viewer-token middleware.
func RegisterRoutes(
	router *gin.Engine,
	jwtManager *jwt.Manager,
	auth *AuthHandler,
	feed *FeedHandler,
	social *SocialHandler,
	search *SearchHandler,
) {
	registerValidations()

	router.POST("/auth/login", auth.Login)

	authorized := router.Group("/")
	authorized.Use(AuthMiddleware(jwtManager))
	{
		authorized.GET("/feed", feed.ListFeed)
		authorized.GET("/explore", feed.ListExplore)
		authorized.POST("/posts", feed.CreatePost)
		authorized.POST("/posts/:postID/like", feed.ToggleLike)
		authorized.GET("/posts/:postID/comments", feed.ListComments)
		authorized.POST("/posts/:postID/comments", feed.AddComment)
		authorized.POST("/comments/:commentID/like", feed.ToggleCommentLike)
		authorized.GET("/stories", feed.ListStories)
		authorized.POST("/stories/:storyID/view", feed.MarkStoryViewed)

		authorized.GET("/users/:userID", social.GetUser)
		authorized.POST("/users/:userID/follow", social.RequestFollow)
		authorized.GET("/follow-requests", social.ListFollowRequests)
		authorized.POST("/follow-requests/:followerID/decision", social.DecideFollow)
		authorized.GET("/notifications", social.ListNotifications)
		authorized.POST("/notifications/:notificationID/read", social.MarkNotificationRead)
		authorized.POST("/notifications/read-all", social.MarkAllNotificationsRead)
		authorized.GET("/notifications/unread-count", social.UnreadCount)

		authorized.GET("/search/users", search.SearchUsers)
	}
}
