package notifications

import (
	"testing"

	"gram/models"

	"github.com/stretchr/testify/assert"
)

func TestPushTitlePerType(t *testing.T) {
	like := models.PostNotification{From: "bob", Type: models.NotificationPostLike}
	comment := models.PostNotification{From: "bob", Type: models.NotificationPostComment}

	assert.Equal(t, "bob liked your post", pushTitle(like))
	assert.Equal(t, "bob commented on your post", pushTitle(comment))
}

func TestPushBodyPerType(t *testing.T) {
	assert.NotEmpty(t, pushBody(models.PostNotification{Type: models.NotificationPostLike}))
	assert.NotEmpty(t, pushBody(models.PostNotification{Type: models.NotificationPostComment}))
}
