package notifications

import (
	"context"
	"fmt"

	"github.com/SherClockHolmes/webpush-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PushSubscription ties a browser push subscription to a username.
// One subscription per user; re-subscribing replaces the old one.
type PushSubscription struct {
	Username string               `bson:"username" json:"username"`
	Sub      webpush.Subscription `bson:"sub" json:"sub"`
}

var ErrNoSubscription = fmt.Errorf("no push subscription")

// SubscriptionStore persists push subscriptions keyed by username.
type SubscriptionStore interface {
	Upsert(ctx context.Context, sub PushSubscription) error
	FindByUsername(ctx context.Context, username string) (PushSubscription, error)
	Delete(ctx context.Context, username string) error
}

type MongoSubscriptionStore struct {
	subs *mongo.Collection
}

func NewMongoSubscriptionStore(subs *mongo.Collection) *MongoSubscriptionStore {
	return &MongoSubscriptionStore{subs: subs}
}

func (s *MongoSubscriptionStore) Upsert(ctx context.Context, sub PushSubscription) error {
	_, err := s.subs.UpdateOne(
		ctx,
		bson.M{"username": sub.Username},
		bson.M{"$set": sub},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}

func (s *MongoSubscriptionStore) FindByUsername(ctx context.Context, username string) (PushSubscription, error) {
	var sub PushSubscription
	err := s.subs.FindOne(ctx, bson.M{"username": username}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return PushSubscription{}, ErrNoSubscription
	}
	if err != nil {
		return PushSubscription{}, fmt.Errorf("find subscription: %w", err)
	}
	return sub, nil
}

func (s *MongoSubscriptionStore) Delete(ctx context.Context, username string) error {
	if _, err := s.subs.DeleteOne(ctx, bson.M{"username": username}); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}
