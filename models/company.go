// models/company.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Company struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"` // Reference to the login user created at signup
	Name      string             `json:"name" bson:"name" validate:"required"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Domain    string             `json:"domain,omitempty" bson:"domain,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Website   string             `json:"website,omitempty" bson:"website,omitempty"`
	Address   Address            `json:"address,omitempty" bson:"address,omitempty"`
	Status    string             `json:"status" bson:"status"` // "active", "inactive", "trial"
	PlanID    string             `json:"plan_id,omitempty" bson:"plan_id,omitempty"`
	PlanName  string             `json:"plan_name,omitempty" bson:"plan_name,omitempty"`
	PlanType  string             `json:"plan_type,omitempty" bson:"plan_type,omitempty"`
	LogoURL   string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
}

// CompanySignupData is the payload for creating a company together with its
// login user. The password is generated server-side and mailed to the company
// email, so it is never part of the payload.
type CompanySignupData struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Domain   string  `json:"domain,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Website  string  `json:"website,omitempty"`
	Address  Address `json:"address,omitempty"`
	PlanID   string  `json:"plan_id,omitempty"`
	PlanName string  `json:"plan_name,omitempty"`
	PlanType string  `json:"plan_type,omitempty"`
}
