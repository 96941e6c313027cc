package notifications

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gram/models"
	"gram/websocket"

	"github.com/SherClockHolmes/webpush-go"
)

// PushDispatcher delivers post notifications over web push and, for
// recipients with an open socket, over the realtime hub. Each send
// runs in its own goroutine so the triggering like/comment never
// waits on delivery.
type PushDispatcher struct {
	subs            SubscriptionStore
	hub             *websocket.Hub
	subscriber      string
	vapidPublicKey  string
	vapidPrivateKey string
}

func NewPushDispatcher(subs SubscriptionStore, hub *websocket.Hub, subscriber, vapidPublicKey, vapidPrivateKey string) *PushDispatcher {
	return &PushDispatcher{
		subs:            subs,
		hub:             hub,
		subscriber:      subscriber,
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
	}
}

func (d *PushDispatcher) SendPostNotification(notification models.PostNotification) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Panic in post notification: %v", r)
			}
		}()

		payload, err := json.Marshal(map[string]interface{}{
			"title": pushTitle(notification),
			"body":  pushBody(notification),
			"data": map[string]interface{}{
				"postId":    notification.PostID,
				"type":      notification.Type,
				"from":      notification.From,
				"timestamp": time.Now().Unix(),
			},
		})
		if err != nil {
			log.Printf("Failed to marshal notification payload: %v", err)
			return
		}

		if d.hub != nil {
			d.hub.NotifyUser(notification.To, payload)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		sub, err := d.subs.FindByUsername(ctx, notification.To)
		if err == ErrNoSubscription {
			return
		}
		if err != nil {
			log.Printf("Failed to find subscription for %s: %v", notification.To, err)
			return
		}

		resp, err := webpush.SendNotification(payload, &sub.Sub, &webpush.Options{
			Subscriber:      d.subscriber,
			VAPIDPublicKey:  d.vapidPublicKey,
			VAPIDPrivateKey: d.vapidPrivateKey,
			TTL:             30,
		})
		if err != nil {
			log.Printf("Failed to send push notification to %s: %v", notification.To, err)
			// 410 means the subscription is gone for good.
			if resp != nil && resp.StatusCode == 410 {
				if delErr := d.subs.Delete(ctx, notification.To); delErr != nil {
					log.Printf("Failed to delete expired subscription: %v", delErr)
				}
			}
			return
		}
		resp.Body.Close()
	}()
}

func pushTitle(n models.PostNotification) string {
	switch n.Type {
	case models.NotificationPostLike:
		return n.From + " liked your post"
	case models.NotificationPostComment:
		return n.From + " commented on your post"
	}
	return "New activity on your post"
}

func pushBody(n models.PostNotification) string {
	switch n.Type {
	case models.NotificationPostLike:
		return "Tap to see who liked it"
	case models.NotificationPostComment:
		return "Tap to read the comment"
	}
	return ""
}
