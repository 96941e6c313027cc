package repositories

import (
	"context"

	"gram/models"
)

// PostRepository persists Post aggregates. All list queries return
// posts ordered by createdAt descending and honor the pagination
// descriptor they are given.
type PostRepository interface {
	Save(ctx context.Context, post models.Post) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, pagination models.Pagination) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (models.Post, error)
	FindByAuthor(ctx context.Context, author string, pagination models.Pagination) ([]models.Post, error)
	FindByCaption(ctx context.Context, caption string, pagination models.Pagination) ([]models.Post, error)
	FindByHashtags(ctx context.Context, hashtags []string, pagination models.Pagination) ([]models.Post, error)
	Update(ctx context.Context, id string, post models.Post) (models.Post, error)
}

// UserRepository resolves user profiles by username.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	VerifyIfUserExists(ctx context.Context, username string) error
	// FindPreviews resolves usernames to previews in one batch query.
	FindPreviews(ctx context.Context, usernames []string) ([]models.UserPreview, error)
}

// SessionResolver turns a session token into the requesting username.
type SessionResolver interface {
	FindUsernameWithToken(ctx context.Context, token string) (string, error)
}
