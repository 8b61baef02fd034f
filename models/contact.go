// models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Contact struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Company   string             `json:"company,omitempty" bson:"company,omitempty"`
	Title     string             `json:"title,omitempty" bson:"title,omitempty"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   Address            `json:"address,omitempty" bson:"address,omitempty"`
	Owner     string             `json:"owner,omitempty" bson:"owner,omitempty"`
	Tags      []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Activity is a scheduled touchpoint against a contact or lead.
type Activity struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ContactID    primitive.ObjectID `json:"contactId,omitempty" bson:"contactId,omitempty"`
	Title        string             `json:"title" bson:"title" validate:"required"`
	ActivityType string             `json:"activityType" bson:"activityType" validate:"required"` // "call", "email", "meeting", "task"
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Owner        string             `json:"owner,omitempty" bson:"owner,omitempty"`
	DueDate      time.Time          `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Reminder     bool               `json:"reminder" bson:"reminder"`
	Done         bool               `json:"done" bson:"done"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
