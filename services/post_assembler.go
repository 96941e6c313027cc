package services

import "gram/models"

// commentsPreviewSize is how many trailing comments ride along with
// every post response.
const commentsPreviewSize = 2

// PostAssembler shapes a stored post into the response projection.
// Pure transformation: no I/O, no mutation of the input.
type PostAssembler struct{}

func NewPostAssembler() *PostAssembler {
	return &PostAssembler{}
}

// AssemblePostResponse builds the requester-relative view of post.
// IsLiked is computed against requesterUsername; a post with no likes
// yet assembles cleanly.
func (a *PostAssembler) AssemblePostResponse(post models.Post, author models.User, requesterUsername string) models.PostResponse {
	return models.PostResponse{
		ID:               post.ID,
		ImageURL:         post.ImageURL,
		Caption:          post.Caption,
		Hashtags:         post.Hashtags,
		UserTags:         post.UserTags,
		Author:           author.Preview(),
		Comments:         post.Comments,
		CommentsPreview:  commentsPreview(post.Comments),
		CreatedAt:        post.CreatedAt,
		IsLiked:          post.IsLikedBy(requesterUsername),
		NumberOfLikes:    len(post.Likes),
		NumberOfComments: len(post.Comments),
	}
}

// commentsPreview returns the last comments in original order, all of
// them when fewer than the preview size exist.
func commentsPreview(comments []models.Comment) []models.Comment {
	if len(comments) <= commentsPreviewSize {
		return comments
	}
	return comments[len(comments)-commentsPreviewSize:]
}
