package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/builditdreamz/builditdreamz_backend/config"
	"github.com/builditdreamz/builditdreamz_backend/models"
)

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection(config.PostsCollection),
	}
}

func (r *PostRepository) Insert(ctx context.Context, post *models.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	res, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("%w: insert post: %v", models.ErrPersistence, err)
	}
	post.ID = objectID(res.InsertedID)
	return nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("%w: find posts: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("%w: decode posts: %v", models.ErrPersistence, err)
	}
	return posts, nil
}

func objectID(id interface{}) primitive.ObjectID {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid
	}
	return primitive.NilObjectID
}
