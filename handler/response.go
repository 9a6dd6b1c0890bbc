package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"instaclone-core/apperrors"
)

// Response is the envelope every endpoint returns, mirroring the shape the
// mobile client already parses.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// respondError maps the structured error kinds to HTTP statuses. Anything
// without a kind is a programming error and comes back as a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConflict:
		status = http.StatusConflict
	case apperrors.KindInvalidState:
		status = http.StatusUnprocessableEntity
	case apperrors.KindForbidden:
		status = http.StatusForbidden
	case apperrors.KindInvalidArgument:
		status = http.StatusBadRequest
	}

	c.JSON(status, Response{Success: false, Message: err.Error()})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: err.Error()})
}
