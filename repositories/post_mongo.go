package repositories

import (
	"context"
	"fmt"
	"regexp"

	"gram/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPostRepository stores each post as a single document in the
// posts collection, comments and likes embedded. Per-document writes
// are atomic in MongoDB, which is what the like/comment
// read-modify-write path relies on.
type MongoPostRepository struct {
	posts *mongo.Collection
}

func NewMongoPostRepository(posts *mongo.Collection) *MongoPostRepository {
	return &MongoPostRepository{posts: posts}
}

func (r *MongoPostRepository) Save(ctx context.Context, post models.Post) error {
	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("save post: %w", err)
	}
	return nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

func (r *MongoPostRepository) Find(ctx context.Context, pagination models.Pagination) ([]models.Post, error) {
	return r.fetch(ctx, bson.M{}, pagination)
}

func (r *MongoPostRepository) FindByAuthor(ctx context.Context, author string, pagination models.Pagination) ([]models.Post, error) {
	return r.fetch(ctx, bson.M{"author": author}, pagination)
}

func (r *MongoPostRepository) FindByCaption(ctx context.Context, caption string, pagination models.Pagination) ([]models.Post, error) {
	// Plain substring match, case-insensitive.
	filter := bson.M{"caption": bson.M{
		"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(caption), Options: "i"},
	}}
	return r.fetch(ctx, filter, pagination)
}

func (r *MongoPostRepository) FindByHashtags(ctx context.Context, hashtags []string, pagination models.Pagination) ([]models.Post, error) {
	return r.fetch(ctx, bson.M{"hashtags": bson.M{"$in": hashtags}}, pagination)
}

func (r *MongoPostRepository) Update(ctx context.Context, id string, post models.Post) (models.Post, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var updated models.Post
	err := r.posts.FindOneAndReplace(ctx, bson.M{"_id": id}, post, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

// fetch runs a paginated list query, most recent first.
func (r *MongoPostRepository) fetch(ctx context.Context, filter bson.M, pagination models.Pagination) ([]models.Post, error) {
	pagination = pagination.Normalize()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(pagination.Skip()).
		SetLimit(int64(pagination.Limit))

	cursor, err := r.posts.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

