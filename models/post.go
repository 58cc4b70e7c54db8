package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog post shown on the blog page
type Post struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Content     string             `json:"content" bson:"content"`
	Author      string             `json:"author" bson:"author"`
	AuthorEmail string             `json:"-" bson:"authorEmail"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// PostRequest model for creating a new post
type PostRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Email    string `json:"email" validate:"required"`
	ImageURL string `json:"imageUrl,omitempty"`
}
