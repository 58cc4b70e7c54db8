package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/builditdreamz/builditdreamz_backend/config"
	"github.com/builditdreamz/builditdreamz_backend/models"
)

// schema enforces document constraints at write time
var schema = validator.New()

// newestFirst sorts listings by creation time, descending
var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

type RequirementRepository struct {
	collection *mongo.Collection
}

func NewRequirementRepository(db *mongo.Database) *RequirementRepository {
	return &RequirementRepository{
		collection: db.Collection(config.RequirementsCollection),
	}
}

// Insert validates the document against the schema, stamps createdAt and stores it
func (r *RequirementRepository) Insert(ctx context.Context, req *models.Requirement) error {
	if err := schema.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}

	res, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: insert requirement: %v", models.ErrPersistence, err)
	}
	req.ID = objectID(res.InsertedID)
	return nil
}

// FindAll returns every requirement, newest first
func (r *RequirementRepository) FindAll(ctx context.Context) ([]models.Requirement, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("%w: find requirements: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	requirements := []models.Requirement{}
	if err := cursor.All(ctx, &requirements); err != nil {
		return nil, fmt.Errorf("%w: decode requirements: %v", models.ErrPersistence, err)
	}
	return requirements, nil
}
