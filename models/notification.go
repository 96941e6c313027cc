package models

type NotificationType string

const (
	NotificationPostLike    NotificationType = "POST_LIKE"
	NotificationPostComment NotificationType = "POST_COMMENT"
)

// PostNotification describes a social-interaction event sent to a
// post's author. Delivery is best effort and never gates the
// operation that produced it.
type PostNotification struct {
	PostID string           `json:"postId"`
	To     string           `json:"to"`
	From   string           `json:"from"`
	Type   NotificationType `json:"type"`
}
