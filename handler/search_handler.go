package handler

import (
	"github.com/gin-gonic/gin"

	models "instaclone-core/model"
	"instaclone-core/service"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchUsers handles GET /search/users?q=john. An empty query returns an
// empty result set, which the client renders as the explore grid. Results
// are trimmed to the summary fields a result row displays.
func (h *SearchHandler) SearchUsers(c *gin.Context) {
	users, err := h.searchService.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	respondOK(c, summaries)
}
