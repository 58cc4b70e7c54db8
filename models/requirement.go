package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Requirement is a property buy/sale requirement posted from the site
type Requirement struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	TransactionType string             `json:"transactionType" bson:"transactionType" validate:"required,oneof=buy sale"`
	PropertyType    string             `json:"propertyType" bson:"propertyType" validate:"required,oneof=flat independentBuilding land"`
	Area            RequirementArea    `json:"area" bson:"area"`
	Location        string             `json:"location" bson:"location" validate:"required"`
	Budget          string             `json:"budget" bson:"budget" validate:"required"`
	Duration        string             `json:"duration" bson:"duration" validate:"required,oneof=immediate 3months 6months"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	Email           string             `json:"email" bson:"email" validate:"required"`
	Phone           string             `json:"phone" bson:"phone" validate:"required"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

type RequirementArea struct {
	Value string `json:"value" bson:"value" validate:"required"`
	Unit  string `json:"unit" bson:"unit" validate:"required,oneof=sqft acre gunta"`
}

// RequirementRequest is the raw POST body. Only presence is checked here;
// enum membership is enforced when the document is written.
type RequirementRequest struct {
	TransactionType FlexString             `json:"transactionType" validate:"required"`
	PropertyType    FlexString             `json:"propertyType" validate:"required"`
	Area            RequirementAreaRequest `json:"area"`
	Location        FlexString             `json:"location" validate:"required"`
	Budget          FlexString             `json:"budget" validate:"required"`
	Duration        FlexString             `json:"duration" validate:"required"`
	Name            FlexString             `json:"name" validate:"required"`
	Email           FlexString             `json:"email" validate:"required"`
	Phone           FlexString             `json:"phone" validate:"required"`
}

type RequirementAreaRequest struct {
	Value FlexString `json:"value" validate:"required"`
	Unit  FlexString `json:"unit" validate:"required"`
}

// ToRequirement builds the document to persist
func (r *RequirementRequest) ToRequirement() *Requirement {
	return &Requirement{
		TransactionType: r.TransactionType.String(),
		PropertyType:    r.PropertyType.String(),
		Area: RequirementArea{
			Value: r.Area.Value.String(),
			Unit:  r.Area.Unit.String(),
		},
		Location: r.Location.String(),
		Budget:   r.Budget.String(),
		Duration: r.Duration.String(),
		Name:     r.Name.String(),
		Email:    r.Email.String(),
		Phone:    r.Phone.String(),
	}
}
