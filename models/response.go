package models

// PostResponse is the read-only projection returned to clients. It is
// derived per request and never persisted.
type PostResponse struct {
	ID               string      `json:"id"`
	ImageURL         string      `json:"imageUrl"`
	Caption          string      `json:"caption"`
	Hashtags         []string    `json:"hashtags"`
	UserTags         []string    `json:"userTags"`
	Author           UserPreview `json:"author"`
	Comments         []Comment   `json:"comments"`
	CommentsPreview  []Comment   `json:"commentsPreview"`
	CreatedAt        int64       `json:"createdAt"`
	IsLiked          bool        `json:"isLiked"`
	NumberOfLikes    int         `json:"numberOfLikes"`
	NumberOfComments int         `json:"numberOfComments"`
}
