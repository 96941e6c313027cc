package services

import (
	"testing"

	"gram/models"

	"github.com/stretchr/testify/assert"
)

func TestAssemblePostResponse(t *testing.T) {
	assembler := NewPostAssembler()

	post := models.Post{
		ID:       "p1",
		Author:   "alice",
		ImageURL: "https://img.example/p1.jpg",
		Caption:  "caption",
		Hashtags: []string{"go"},
		UserTags: []string{"bob"},
		Comments: []models.Comment{
			{ID: "c1", Author: "bob", Comment: "one"},
			{ID: "c2", Author: "carol", Comment: "two"},
			{ID: "c3", Author: "bob", Comment: "three"},
		},
		Likes:     []string{"bob", "carol"},
		CreatedAt: 42,
	}
	author := models.User{Username: "alice", ImageURL: "https://img.example/alice.jpg", Bio: "private"}

	response := assembler.AssemblePostResponse(post, author, "bob")

	assert.Equal(t, "p1", response.ID)
	assert.Equal(t, models.UserPreview{Username: "alice", ImageURL: "https://img.example/alice.jpg"}, response.Author)
	assert.True(t, response.IsLiked)
	assert.Equal(t, 2, response.NumberOfLikes)
	assert.Equal(t, 3, response.NumberOfComments)
	assert.Equal(t, post.Comments, response.Comments)
	assert.Equal(t, []models.Comment{post.Comments[1], post.Comments[2]}, response.CommentsPreview, "last two in original order")
	assert.Equal(t, int64(42), response.CreatedAt)
}

func TestAssemblePostResponseNotLiked(t *testing.T) {
	assembler := NewPostAssembler()
	post := models.Post{ID: "p1", Likes: []string{"carol"}}

	response := assembler.AssemblePostResponse(post, models.User{Username: "alice"}, "bob")

	assert.False(t, response.IsLiked)
	assert.Equal(t, 1, response.NumberOfLikes)
}

func TestAssemblePostResponseToleratesNilCollections(t *testing.T) {
	assembler := NewPostAssembler()
	post := models.Post{ID: "p1"}

	response := assembler.AssemblePostResponse(post, models.User{Username: "alice"}, "bob")

	assert.False(t, response.IsLiked)
	assert.Zero(t, response.NumberOfLikes)
	assert.Zero(t, response.NumberOfComments)
	assert.Empty(t, response.CommentsPreview)
}

func TestAssemblePostResponsePreviewShorterThanTwo(t *testing.T) {
	assembler := NewPostAssembler()
	post := models.Post{
		ID:       "p1",
		Comments: []models.Comment{{ID: "c1", Author: "bob", Comment: "only"}},
	}

	response := assembler.AssemblePostResponse(post, models.User{Username: "alice"}, "bob")

	assert.Equal(t, post.Comments, response.CommentsPreview)
}
