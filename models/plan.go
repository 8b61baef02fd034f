// models/plan.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan represents a subscription package companies can be signed up on.
// PlanID is a generated string identifier stored alongside the Mongo _id;
// companies reference plans by this string, not by ObjectID.
type Plan struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PlanID       string             `json:"plan_id" bson:"plan_id"`
	PlanName     string             `json:"planName" bson:"planName" validate:"required"`
	PlanType     string             `json:"planType" bson:"planType" validate:"required"` // "monthly", "yearly"
	Price        float64            `json:"price" bson:"price" validate:"gte=0"`
	Discount     float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	DiscountType string             `json:"discountType,omitempty" bson:"discountType,omitempty"` // "percent", "flat"
	Modules      []string           `json:"modules,omitempty" bson:"modules,omitempty"`           // entitled feature modules
	TrialDays    int                `json:"trialDays,omitempty" bson:"trialDays,omitempty"`
	IsTrial      bool               `json:"isTrial" bson:"isTrial"`
	Status       string             `json:"status" bson:"status"` // "active", "inactive"
	Subscribers  int                `json:"subscribers" bson:"subscribers"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CompanySubscription is the shape returned by the subscriptions module:
// a company joined with the plan its plan_id currently points at.
type CompanySubscription struct {
	Company `bson:",inline"`
	Plan    *Plan `json:"plan,omitempty" bson:"plan,omitempty"`
}
