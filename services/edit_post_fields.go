package services

import "gram/models"

// AssembleEditPostFields projects the inbound edit payload onto the
// whitelisted mutable fields. Anything else in the request never
// reaches the stored post.
func AssembleEditPostFields(request models.EditPostFieldsRequest) models.EditPostFields {
	return models.EditPostFields{
		Caption:  request.Caption,
		Hashtags: request.Hashtags,
		UserTags: request.UserTags,
	}
}

// ApplyEditPostFields merges fields over post. Only caption, hashtags
// and userTags can change; id, author, imageUrl, likes, comments and
// createdAt pass through untouched. Nil fields were absent from the
// edit request and leave the stored value as is.
func ApplyEditPostFields(post models.Post, fields models.EditPostFields) models.Post {
	if fields.Caption != nil {
		post.Caption = *fields.Caption
	}
	if fields.Hashtags != nil {
		post.Hashtags = fields.Hashtags
	}
	if fields.UserTags != nil {
		post.UserTags = fields.UserTags
	}
	return post
}
