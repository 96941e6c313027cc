package models

import "io"

// AddPostRequest carries everything needed to publish a new post.
// Image is the raw upload; it is stored before the post is persisted.
type AddPostRequest struct {
	Author   string
	Caption  string
	Hashtags []string
	UserTags []string
	Image    io.Reader
}

// EditPostFieldsRequest is the inbound edit payload. Nil fields were
// absent from the request and must leave the stored value untouched.
type EditPostFieldsRequest struct {
	Caption  *string  `json:"caption"`
	Hashtags []string `json:"hashtags"`
	UserTags []string `json:"userTags"`
}

// EditPostFields is the whitelisted projection applied over an
// existing post. It can never carry id, author, imageUrl, likes or
// comments.
type EditPostFields struct {
	Caption  *string
	Hashtags []string
	UserTags []string
}

type PostCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}
