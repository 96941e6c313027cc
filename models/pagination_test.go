package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	p := Pagination{}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Limit)

	p = Pagination{Page: -3, Limit: 1000}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPageSize, p.Limit)

	p = Pagination{Page: 4, Limit: 25}.Normalize()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.Limit)
}

func TestPaginationSkip(t *testing.T) {
	assert.Equal(t, int64(0), Pagination{Page: 1, Limit: 20}.Skip())
	assert.Equal(t, int64(60), Pagination{Page: 4, Limit: 20}.Skip())
}

func TestPostIsLikedBy(t *testing.T) {
	post := Post{Likes: []string{"alice", "bob"}}
	assert.True(t, post.IsLikedBy("alice"))
	assert.False(t, post.IsLikedBy("carol"))

	empty := Post{}
	assert.False(t, empty.IsLikedBy("alice"))
}
