package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"instaclone-core/pkg/jwt"
	"instaclone-core/repository"
)

// AuthHandler mints viewer tokens. There is no real credential store behind
// this surface; any password is accepted for a known username, which is all
// the login screen needs.
type AuthHandler struct {
	userRepo    repository.UserRepository
	jwtManager  *jwt.Manager
	tokenExpiry time.Duration
}

func NewAuthHandler(userRepo repository.UserRepository, jwtManager *jwt.Manager, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		tokenExpiry: tokenExpiry,
	}
}

type loginRequest struct {
	UserName string `json:"user_name" binding:"required,username"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userRepo.GetByUsername(c.Request.Context(), req.UserName)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String(), user.UserName, h.tokenExpiry)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"token": token,
		"user":  user,
	})
}
