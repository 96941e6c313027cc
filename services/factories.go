package services

import (
	"time"

	"gram/models"

	"github.com/google/uuid"
)

// PostFactory builds new Post aggregates. Identifiers are random
// UUIDs; everything else is copied verbatim from the request.
type PostFactory struct {
	newID func() string
	now   func() int64
}

func NewPostFactory() *PostFactory {
	return &PostFactory{
		newID: uuid.NewString,
		now:   func() int64 { return time.Now().Unix() },
	}
}

func (f *PostFactory) Create(request models.AddPostRequest, imageURL string) models.Post {
	return models.Post{
		ID:        f.newID(),
		Author:    request.Author,
		ImageURL:  imageURL,
		Caption:   request.Caption,
		Hashtags:  request.Hashtags,
		UserTags:  request.UserTags,
		Comments:  []models.Comment{},
		Likes:     []string{},
		CreatedAt: f.now(),
	}
}

// CommentFactory builds immutable comments owned by their post.
type CommentFactory struct {
	newID func() string
}

func NewCommentFactory() *CommentFactory {
	return &CommentFactory{newID: uuid.NewString}
}

func (f *CommentFactory) Create(author string, request models.PostCommentRequest) models.Comment {
	return models.Comment{
		ID:      f.newID(),
		Author:  author,
		Comment: request.Comment,
	}
}
