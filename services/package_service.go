// services/package_service.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/models"
)

var validate = validator.New()

const queryTimeout = 10 * time.Second

// FetchPlans returns every plan, newest first.
func FetchPlans(db *mongo.Client) models.Envelope {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	collection := config.GetCollection(db, "packages")
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Error finding plans: %v", err)
		return models.Fail(err)
	}
	defer cursor.Close(ctx)

	plans := []models.Plan{}
	if err = cursor.All(ctx, &plans); err != nil {
		log.Printf("Error decoding plans: %v", err)
		return models.Fail(err)
	}

	return models.Ok(plans)
}

type planIDPayload struct {
	PlanID string `json:"planid"`
}

// GetPlan returns a single plan by its plan_id string. A missing document
// is a business failure, not an error to crash on.
func GetPlan(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req planIDPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Fail(err)
	}
	if req.PlanID == "" {
		return models.FailMessage("planid is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var plan models.Plan
	err := config.GetCollection(db, "packages").FindOne(ctx, bson.M{"plan_id": req.PlanID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.FailMessage("plan not found")
		}
		log.Printf("Error finding plan %s: %v", req.PlanID, err)
		return models.Fail(err)
	}

	return models.Ok(plan)
}

// AddPlan validates and inserts a new plan. Validation failure aborts the
// insert.
func AddPlan(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var plan models.Plan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return models.Fail(err)
	}
	if err := validate.Struct(plan); err != nil {
		return models.Fail(err)
	}

	plan.ID = primitive.NewObjectID()
	plan.PlanID = uuid.NewString()
	if plan.Status == "" {
		plan.Status = "active"
	}
	plan.Subscribers = 0
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if _, err := config.GetCollection(db, "packages").InsertOne(ctx, plan); err != nil {
		log.Printf("Error inserting plan: %v", err)
		return models.Fail(err)
	}

	return models.OkMessage(plan, "plan created")
}

type updatePlanPayload struct {
	PlanID string      `json:"planid"`
	Plan   models.Plan `json:"plan"`
}

// UpdatePlan applies field updates to an existing plan. The generated
// plan_id and the subscriber counter are not writable through this path.
func UpdatePlan(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req updatePlanPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Fail(err)
	}
	if req.PlanID == "" {
		return models.FailMessage("planid is required")
	}
	if err := validate.Struct(req.Plan); err != nil {
		return models.Fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"planName":     req.Plan.PlanName,
			"planType":     req.Plan.PlanType,
			"price":        req.Plan.Price,
			"discount":     req.Plan.Discount,
			"discountType": req.Plan.DiscountType,
			"modules":      req.Plan.Modules,
			"trialDays":    req.Plan.TrialDays,
			"isTrial":      req.Plan.IsTrial,
			"status":       req.Plan.Status,
			"updatedAt":    time.Now(),
		},
	}

	res, err := config.GetCollection(db, "packages").UpdateOne(ctx, bson.M{"plan_id": req.PlanID}, update)
	if err != nil {
		log.Printf("Error updating plan %s: %v", req.PlanID, err)
		return models.Fail(err)
	}
	if res.MatchedCount == 0 {
		return models.FailMessage("plan not found")
	}

	return models.OkMessage(nil, "plan updated")
}

// DeletePlan removes a plan by its plan_id string.
func DeletePlan(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req planIDPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Fail(err)
	}
	if req.PlanID == "" {
		return models.FailMessage("planid is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := config.GetCollection(db, "packages").DeleteOne(ctx, bson.M{"plan_id": req.PlanID})
	if err != nil {
		log.Printf("Error deleting plan %s: %v", req.PlanID, err)
		return models.Fail(err)
	}
	if res.DeletedCount == 0 {
		return models.FailMessage("plan not found")
	}

	return models.OkMessage(nil, "plan deleted")
}
