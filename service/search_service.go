package service

import (
	"context"
	"strings"

	models "instaclone-core/model"
	"instaclone-core/repository"
)

// SearchService resolves user search queries against the suggested-user set.
type SearchService struct {
	userRepo repository.UserRepository
}

func NewSearchService(userRepo repository.UserRepository) *SearchService {
	return &SearchService{userRepo: userRepo}
}

// SearchUsers filters the repository's candidate set with FilterUsers.
func (s *SearchService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	candidates, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterUsers(query, candidates), nil
}

// FilterUsers is a stable, case-insensitive substring filter over username
// and full name. An empty query returns an empty slice so the UI can tell
// "not searching" apart from "searching with zero results"; candidate order
// is preserved either way. Pure function, safe for concurrent use.
func FilterUsers(query string, candidates []models.User) []models.User {
	matches := []models.User{}
	if query == "" {
		return matches
	}

	needle := strings.ToLower(query)
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate.UserName), needle) ||
			strings.Contains(strings.ToLower(candidate.FullName), needle) {
			matches = append(matches, candidate)
		}
	}
	return matches
}
