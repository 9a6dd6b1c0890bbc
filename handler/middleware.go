package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"instaclone-core/pkg/jwt"
)

const viewerIDKey = "viewer_id"

// AuthMiddleware resolves the current viewer from a Bearer token. Every
// state-manager operation downstream receives the viewer id from here.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Success: false, Message: "authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Success: false, Message: "authorization header must be a Bearer token"})
			return
		}

		claims, err := jwtManager.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Success: false, Message: "invalid or expired token"})
			return
		}

		viewerID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Success: false, Message: "invalid viewer id in token"})
			return
		}

		c.Set(viewerIDKey, viewerID)
		c.Next()
	}
}

// viewerID returns the authenticated viewer set by AuthMiddleware.
func viewerID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(viewerIDKey)
	viewer, _ := id.(uuid.UUID)
	return viewer
}

// pathID parses a uuid path parameter.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
