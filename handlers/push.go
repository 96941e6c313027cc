package handlers

import (
	"net/http"

	"gram/notifications"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
)

type PushHandler struct {
	subs           notifications.SubscriptionStore
	vapidPublicKey string
}

func NewPushHandler(subs notifications.SubscriptionStore, vapidPublicKey string) *PushHandler {
	return &PushHandler{subs: subs, vapidPublicKey: vapidPublicKey}
}

// GetVapidPublicKey exposes the key browsers need to subscribe.
func (h *PushHandler) GetVapidPublicKey(c *gin.Context) {
	if h.vapidPublicKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "VAPID public key not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicKey": h.vapidPublicKey})
}

// Subscribe upserts the caller's push subscription; resubscribing
// from a new browser replaces the previous one.
func (h *PushHandler) Subscribe(c *gin.Context) {
	var req struct {
		Endpoint string `json:"endpoint" binding:"required"`
		Keys     struct {
			P256dh string `json:"p256dh" binding:"required"`
			Auth   string `json:"auth" binding:"required"`
		} `json:"keys" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	sub := notifications.PushSubscription{
		Username: c.GetString("username"),
		Sub: webpush.Subscription{
			Endpoint: req.Endpoint,
			Keys: webpush.Keys{
				P256dh: req.Keys.P256dh,
				Auth:   req.Keys.Auth,
			},
		},
	}

	if err := h.subs.Upsert(ctx, sub); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push subscription saved successfully"})
}
