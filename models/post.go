// models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post model for the social feed
type Post struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID   `json:"userId" bson:"userId"`
	AuthorName string               `json:"authorName,omitempty" bson:"authorName,omitempty"`
	Content    string               `json:"content" bson:"content"`
	Likes      []primitive.ObjectID `json:"likes,omitempty" bson:"likes,omitempty"`
	Comments   []Comment            `json:"comments,omitempty" bson:"comments,omitempty"`
	CreatedAt  time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Comment model for post comments
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// PostRequest model for creating a new post
type PostRequest struct {
	Content string `json:"content" validate:"required"`
}
