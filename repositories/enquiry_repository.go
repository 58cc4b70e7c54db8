package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/builditdreamz/builditdreamz_backend/config"
	"github.com/builditdreamz/builditdreamz_backend/models"
)

type EnquiryRepository struct {
	collection *mongo.Collection
}

func NewEnquiryRepository(db *mongo.Database) *EnquiryRepository {
	return &EnquiryRepository{
		collection: db.Collection(config.EnquiriesCollection),
	}
}

func (r *EnquiryRepository) Insert(ctx context.Context, enquiry *models.Enquiry) error {
	if err := schema.Struct(enquiry); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if enquiry.CreatedAt.IsZero() {
		enquiry.CreatedAt = time.Now()
	}

	res, err := r.collection.InsertOne(ctx, enquiry)
	if err != nil {
		return fmt.Errorf("%w: insert enquiry: %v", models.ErrPersistence, err)
	}
	enquiry.ID = objectID(res.InsertedID)
	return nil
}

func (r *EnquiryRepository) FindAll(ctx context.Context) ([]models.Enquiry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("%w: find enquiries: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	enquiries := []models.Enquiry{}
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, fmt.Errorf("%w: decode enquiries: %v", models.ErrPersistence, err)
	}
	return enquiries, nil
}
