package notifications

import "gram/models"

// Dispatcher delivers social-interaction events. Implementations are
// fire-and-forget: failures are logged, never returned, and never
// roll back the operation that triggered them.
type Dispatcher interface {
	SendPostNotification(notification models.PostNotification)
}
