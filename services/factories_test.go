package services

import (
	"testing"

	"gram/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFactoryCreate(t *testing.T) {
	factory := NewPostFactory()
	request := models.AddPostRequest{
		Author:   "alice",
		Caption:  "caption",
		Hashtags: []string{"go"},
		UserTags: []string{"bob"},
	}

	post := factory.Create(request, "https://img.example/x.jpg")

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "alice", post.Author)
	assert.Equal(t, "caption", post.Caption)
	assert.Equal(t, []string{"go"}, post.Hashtags)
	assert.Equal(t, []string{"bob"}, post.UserTags)
	assert.Equal(t, "https://img.example/x.jpg", post.ImageURL)
	assert.NotZero(t, post.CreatedAt)

	require.NotNil(t, post.Likes)
	require.NotNil(t, post.Comments)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
}

func TestPostFactoryGeneratesUniqueIDs(t *testing.T) {
	factory := NewPostFactory()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		post := factory.Create(models.AddPostRequest{Author: "alice"}, "url")
		assert.False(t, seen[post.ID], "duplicate id %s", post.ID)
		seen[post.ID] = true
	}
}

func TestCommentFactoryCreate(t *testing.T) {
	factory := NewCommentFactory()

	first := factory.Create("bob", models.PostCommentRequest{Comment: "hi"})
	second := factory.Create("bob", models.PostCommentRequest{Comment: "hi"})

	assert.Equal(t, "bob", first.Author)
	assert.Equal(t, "hi", first.Comment)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}
