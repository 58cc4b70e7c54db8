package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enquiry types offered on the site
const (
	EnquiryTypeInterior     = "interior"
	EnquiryTypeConstruction = "construction"
	EnquiryTypeDevelopment  = "development"
)

// Enquiry is a service enquiry for interior, construction or development work
type Enquiry struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Type             string             `json:"type" bson:"type" validate:"required,oneof=interior construction development"`
	Name             string             `json:"name" bson:"name" validate:"required"`
	Email            string             `json:"email" bson:"email" validate:"required"`
	Phone            string             `json:"phone" bson:"phone" validate:"required"`
	Area             EnquiryArea        `json:"area" bson:"area"`
	Location         string             `json:"location" bson:"location" validate:"required"`
	Budget           string             `json:"budget" bson:"budget" validate:"required,oneof=classic premium luxury"`
	InteriorTypes    []string           `json:"interiorTypes,omitempty" bson:"interiorTypes,omitempty" validate:"dive,oneof=bedroom washroom kitchen diningRoom wallpaper livingRoom"`
	ConstructionType string             `json:"constructionType,omitempty" bson:"constructionType,omitempty" validate:"omitempty,oneof=residential commercial"`
	DevelopmentType  string             `json:"developmentType,omitempty" bson:"developmentType,omitempty" validate:"omitempty,oneof=villa plotting highRise"`
	Advance          string             `json:"advance,omitempty" bson:"advance,omitempty"`
	Ration           string             `json:"ration,omitempty" bson:"ration,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}

type EnquiryArea struct {
	Value float64 `json:"value" bson:"value" validate:"gt=0"`
	Unit  string  `json:"unit" bson:"unit" validate:"required,oneof=sqft acre"`
}

// MissingTypeField returns the name of the field the enquiry type needs but
// does not carry, or "" when the enquiry is complete for its type.
func (e *Enquiry) MissingTypeField() string {
	switch e.Type {
	case EnquiryTypeInterior:
		if len(e.InteriorTypes) == 0 {
			return "interiorTypes"
		}
	case EnquiryTypeConstruction:
		if e.ConstructionType == "" {
			return "constructionType"
		}
	case EnquiryTypeDevelopment:
		if e.DevelopmentType == "" {
			return "developmentType"
		}
	}
	return ""
}
