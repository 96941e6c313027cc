package services

import (
	"context"

	"gram/models"
	"gram/repositories"
)

// UserPreviewService resolves sets of usernames into previews, used
// by the likers listing.
type UserPreviewService struct {
	users repositories.UserRepository
}

func NewUserPreviewService(users repositories.UserRepository) *UserPreviewService {
	return &UserPreviewService{users: users}
}

func (s *UserPreviewService) GetUserPreviews(ctx context.Context, usernames []string) ([]models.UserPreview, error) {
	return s.users.FindPreviews(ctx, usernames)
}
