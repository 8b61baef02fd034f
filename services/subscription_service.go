// services/subscription_service.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/models"
	"github.com/stafflyhq/staffly_backend/utils"
)

// FetchSubscriptions joins every company with the plan its plan_id points
// at. Companies without a plan come back with a nil plan.
func FetchSubscriptions(db *mongo.Client) models.Envelope {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "packages",
			"localField":   "plan_id",
			"foreignField": "plan_id",
			"as":           "plan",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$plan",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	cursor, err := config.GetCollection(db, "companies").Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("Error aggregating subscriptions: %v", err)
		return models.Fail(err)
	}
	defer cursor.Close(ctx)

	subs := []models.CompanySubscription{}
	if err = cursor.All(ctx, &subs); err != nil {
		log.Printf("Error decoding subscriptions: %v", err)
		return models.Fail(err)
	}

	return models.Ok(subs)
}

type updateSubscriptionPayload struct {
	CompanyID string `json:"companyid"`
	PlanID    string `json:"plan_id"`
}

// UpdateSubscription re-points a company at a different plan, moving the
// denormalized subscriber counts and refreshing the copied plan fields.
func UpdateSubscription(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req updateSubscriptionPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Fail(err)
	}
	if req.PlanID == "" {
		return models.FailMessage("plan_id is required")
	}

	objID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		return models.FailMessage("invalid company id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var plan models.Plan
	err = config.GetCollection(db, "packages").FindOne(ctx, bson.M{"plan_id": req.PlanID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.FailMessage("plan not found")
		}
		return models.Fail(err)
	}

	companies := config.GetCollection(db, "companies")
	var company models.Company
	if err := companies.FindOne(ctx, bson.M{"_id": objID}).Decode(&company); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.FailMessage("company not found")
		}
		return models.Fail(err)
	}

	update := bson.M{
		"$set": bson.M{
			"plan_id":   plan.PlanID,
			"plan_name": plan.PlanName,
			"plan_type": plan.PlanType,
			"updatedAt": time.Now(),
		},
	}
	if _, err := companies.UpdateOne(ctx, bson.M{"_id": objID}, update); err != nil {
		log.Printf("Error updating subscription for %s: %v", req.CompanyID, err)
		return models.Fail(err)
	}

	if company.PlanID != plan.PlanID {
		if company.PlanID != "" {
			adjustSubscribers(ctx, db, company.PlanID, -1)
		}
		adjustSubscribers(ctx, db, plan.PlanID, 1)
	}

	if err := utils.SendPlanChangeEmail(company.Email, company.Name, plan.PlanName); err != nil {
		log.Printf("Failed to send plan change email to %s: %v", company.Email, err)
	}

	return models.OkMessage(nil, "subscription updated")
}
