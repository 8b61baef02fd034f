// services/dashboard_service.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/models"
	"github.com/stafflyhq/staffly_backend/utils"
)

type dashboardFilterPayload struct {
	Filter    string `json:"filter"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (p *dashboardFilterPayload) window(payload json.RawMessage) (time.Time, time.Time, error) {
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, p); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if p.Filter == "" {
		p.Filter = utils.FilterLast30
	}
	return utils.ResolveDateRange(p.Filter, p.StartDate, p.EndDate, time.Now())
}

// CompanyStats aggregates total signups and a per-day series over the
// requested window.
func CompanyStats(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req dashboardFilterPayload
	start, end, err := req.window(payload)
	if err != nil {
		return models.Fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := config.GetCollection(db, "companies").Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("Error aggregating company stats: %v", err)
		return models.Fail(err)
	}
	defer cursor.Close(ctx)

	series := []bson.M{}
	if err = cursor.All(ctx, &series); err != nil {
		log.Printf("Error decoding company stats: %v", err)
		return models.Fail(err)
	}

	total := 0
	for _, point := range series {
		if n, ok := point["count"].(int32); ok {
			total += int(n)
		}
	}

	return models.Ok(bson.M{
		"total":  total,
		"series": series,
	})
}

// RevenueStats joins companies with their plan over the window and sums
// plan prices per plan.
func RevenueStats(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req dashboardFilterPayload
	start, end, err := req.window(payload)
	if err != nil {
		return models.Fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": start, "$lt": end},
			"plan_id":   bson.M{"$ne": ""},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "packages",
			"localField":   "plan_id",
			"foreignField": "plan_id",
			"as":           "plan",
		}}},
		{{Key: "$unwind", Value: "$plan"}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$plan.planName",
			"companies": bson.M{"$sum": 1},
			"revenue":   bson.M{"$sum": "$plan.price"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "revenue", Value: -1}}}},
	}

	cursor, err := config.GetCollection(db, "companies").Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("Error aggregating revenue stats: %v", err)
		return models.Fail(err)
	}
	defer cursor.Close(ctx)

	rows := []bson.M{}
	if err = cursor.All(ctx, &rows); err != nil {
		log.Printf("Error decoding revenue stats: %v", err)
		return models.Fail(err)
	}

	return models.Ok(rows)
}

type recentCompaniesPayload struct {
	Limit int64 `json:"limit,omitempty"`
}

// RecentCompanies returns the most recently created companies.
func RecentCompanies(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req recentCompaniesPayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return models.Fail(err)
		}
	}
	if req.Limit <= 0 || req.Limit > 50 {
		req.Limit = 5
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(req.Limit)
	cursor, err := config.GetCollection(db, "companies").Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Error finding recent companies: %v", err)
		return models.Fail(err)
	}
	defer cursor.Close(ctx)

	companies := []models.Company{}
	if err = cursor.All(ctx, &companies); err != nil {
		log.Printf("Error decoding recent companies: %v", err)
		return models.Fail(err)
	}

	return models.Ok(companies)
}
