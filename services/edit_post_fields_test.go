package services

import (
	"testing"

	"gram/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyEditPostFieldsWhitelist(t *testing.T) {
	post := models.Post{
		ID:       "p1",
		Author:   "alice",
		ImageURL: "https://img.example/p1.jpg",
		Caption:  "old",
		Hashtags: []string{"old"},
		UserTags: []string{"old"},
		Likes:    []string{"bob"},
		Comments: []models.Comment{{ID: "c1", Author: "bob", Comment: "hi"}},
	}

	caption := "new"
	merged := ApplyEditPostFields(post, models.EditPostFields{
		Caption:  &caption,
		Hashtags: []string{"new"},
		UserTags: []string{"new"},
	})

	assert.Equal(t, "new", merged.Caption)
	assert.Equal(t, []string{"new"}, merged.Hashtags)
	assert.Equal(t, []string{"new"}, merged.UserTags)

	assert.Equal(t, post.ID, merged.ID)
	assert.Equal(t, post.Author, merged.Author)
	assert.Equal(t, post.ImageURL, merged.ImageURL)
	assert.Equal(t, post.Likes, merged.Likes)
	assert.Equal(t, post.Comments, merged.Comments)
}

func TestApplyEditPostFieldsNilMeansUntouched(t *testing.T) {
	post := models.Post{Caption: "keep", Hashtags: []string{"keep"}, UserTags: []string{"keep"}}

	merged := ApplyEditPostFields(post, models.EditPostFields{})

	assert.Equal(t, post, merged)
}

func TestAssembleEditPostFieldsCarriesOnlyWhitelist(t *testing.T) {
	caption := "c"
	fields := AssembleEditPostFields(models.EditPostFieldsRequest{
		Caption:  &caption,
		Hashtags: []string{"h"},
		UserTags: []string{"u"},
	})

	assert.Equal(t, &caption, fields.Caption)
	assert.Equal(t, []string{"h"}, fields.Hashtags)
	assert.Equal(t, []string{"u"}, fields.UserTags)
}
