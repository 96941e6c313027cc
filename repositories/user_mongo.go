package repositories

import (
	"context"
	"fmt"

	"gram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(users *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{users: users}
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *MongoUserRepository) VerifyIfUserExists(ctx context.Context, username string) error {
	count, err := r.users.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return fmt.Errorf("verify user: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) FindPreviews(ctx context.Context, usernames []string) ([]models.UserPreview, error) {
	if len(usernames) == 0 {
		return []models.UserPreview{}, nil
	}

	cursor, err := r.users.Find(ctx, bson.M{"username": bson.M{"$in": usernames}})
	if err != nil {
		return nil, fmt.Errorf("find previews: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode previews: %w", err)
	}

	byName := make(map[string]models.UserPreview, len(users))
	for _, u := range users {
		byName[u.Username] = u.Preview()
	}

	// Preserve the caller's ordering; skip usernames that no longer
	// resolve to an account.
	previews := make([]models.UserPreview, 0, len(usernames))
	for _, name := range usernames {
		if preview, ok := byName[name]; ok {
			previews = append(previews, preview)
		}
	}
	return previews, nil
}

// Save inserts a new user; unique indexes on username and email turn
// duplicates into ErrDuplicate.
func (r *MongoUserRepository) Save(ctx context.Context, user models.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// FindByEmail is used by login, where the credential is the email.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
