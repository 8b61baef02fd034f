// services/company_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/models"
	"github.com/stafflyhq/staffly_backend/repositories"
	"github.com/stafflyhq/staffly_backend/utils"
)

type companyFilterPayload struct {
	Filter    string `json:"filter,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// FetchCompanies lists companies, optionally restricted to a named
// date-range filter over createdAt.
func FetchCompanies(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req companyFilterPayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return models.Fail(err)
		}
	}

	query := bson.M{}
	if req.Filter != "" {
		start, end, err := utils.ResolveDateRange(req.Filter, req.StartDate, req.EndDate, time.Now())
		if err != nil {
			return models.Fail(err)
		}
		query["createdAt"] = bson.M{"$gte": start, "$lt": end}
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := config.GetCollection(db, "companies").Find(ctx, query, opts)
	if err != nil {
		log.Printf("Error finding companies: %v", err)
		return models.Fail(err)
	}
	defer cursor.Close(ctx)

	companies := []models.Company{}
	if err = cursor.All(ctx, &companies); err != nil {
		log.Printf("Error decoding companies: %v", err)
		return models.Fail(err)
	}

	return models.Ok(companies)
}

type companyIDPayload struct {
	CompanyID string `json:"companyid"`
}

// GetCompany returns one company by id.
func GetCompany(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req companyIDPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Fail(err)
	}

	objID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		return models.FailMessage("invalid company id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var company models.Company
	err = config.GetCollection(db, "companies").FindOne(ctx, bson.M{"_id": objID}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.FailMessage("company not found")
		}
		log.Printf("Error finding company %s: %v", req.CompanyID, err)
		return models.Fail(err)
	}

	return models.Ok(company)
}

// AddCompany creates a company together with its login user. The steps run
// sequentially: insert the company, create the user with a generated
// temporary password, link the user back, email the credentials. A failure
// after the insert is logged and reported; there is no rollback.
func AddCompany(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req models.CompanySignupData
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Fail(err)
	}
	if err := validate.Struct(req); err != nil {
		return models.Fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	company := models.Company{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Domain:    req.Domain,
		Phone:     req.Phone,
		Website:   req.Website,
		Address:   req.Address,
		Status:    "active",
		PlanID:    req.PlanID,
		PlanName:  req.PlanName,
		PlanType:  req.PlanType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	companies := config.GetCollection(db, "companies")
	if _, err := companies.InsertOne(ctx, company); err != nil {
		log.Printf("Error inserting company: %v", err)
		return models.Fail(err)
	}

	tempPassword, err := utils.GenerateTempPassword(12)
	if err != nil {
		log.Printf("Company %s created but password generation failed: %v", company.ID.Hex(), err)
		return models.FailMessage("company created but account setup failed")
	}

	hashed, err := utils.HashPassword(tempPassword)
	if err != nil {
		log.Printf("Company %s created but password hashing failed: %v", company.ID.Hex(), err)
		return models.FailMessage("company created but account setup failed")
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashed,
		FullName:  req.Name,
		Role:      models.RoleAdmin,
		CompanyID: &company.ID,
		IsActive:  true,
	}
	userID, err := repositories.NewUserRepository(db).Create(ctx, &user)
	if err != nil {
		log.Printf("Company %s created but user creation failed: %v", company.ID.Hex(), err)
		return models.FailMessage("company created but account setup failed")
	}

	_, err = companies.UpdateOne(ctx, bson.M{"_id": company.ID}, bson.M{
		"$set": bson.M{"userId": userID, "updatedAt": time.Now()},
	})
	if err != nil {
		log.Printf("Company %s created but user link failed: %v", company.ID.Hex(), err)
	}
	company.UserID = userID

	if company.PlanID != "" {
		adjustSubscribers(ctx, db, company.PlanID, 1)
	}

	if err := utils.SendCompanyCredentialsEmail(req.Email, req.Name, tempPassword); err != nil {
		log.Printf("Failed to send credentials email to %s: %v", req.Email, err)
	}

	return models.OkMessage(company, "company created")
}

type updateCompanyPayload struct {
	CompanyID string                   `json:"companyid"`
	Company   models.CompanySignupData `json:"company"`
}

// UpdateCompany applies field updates; a plan change moves the denormalized
// subscriber counts between the old and new plan.
func UpdateCompany(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req updateCompanyPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Fail(err)
	}
	if err := validate.Struct(req.Company); err != nil {
		return models.Fail(err)
	}

	objID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		return models.FailMessage("invalid company id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	companies := config.GetCollection(db, "companies")

	var existing models.Company
	if err := companies.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.FailMessage("company not found")
		}
		return models.Fail(err)
	}

	update := bson.M{
		"$set": bson.M{
			"name":      req.Company.Name,
			"email":     req.Company.Email,
			"domain":    req.Company.Domain,
			"phone":     req.Company.Phone,
			"website":   req.Company.Website,
			"address":   req.Company.Address,
			"plan_id":   req.Company.PlanID,
			"plan_name": req.Company.PlanName,
			"plan_type": req.Company.PlanType,
			"updatedAt": time.Now(),
		},
	}
	if _, err := companies.UpdateOne(ctx, bson.M{"_id": objID}, update); err != nil {
		log.Printf("Error updating company %s: %v", req.CompanyID, err)
		return models.Fail(err)
	}

	if existing.PlanID != req.Company.PlanID {
		if existing.PlanID != "" {
			adjustSubscribers(ctx, db, existing.PlanID, -1)
		}
		if req.Company.PlanID != "" {
			adjustSubscribers(ctx, db, req.Company.PlanID, 1)
		}
	}

	return models.OkMessage(nil, "company updated")
}

type deleteCompaniesPayload struct {
	IDs []string `json:"ids"`
}

// DeleteCompanies hard-deletes companies by id list along with their login
// users, and reports how many documents matched.
func DeleteCompanies(db *mongo.Client, payload json.RawMessage) models.Envelope {
	var req deleteCompaniesPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Fail(err)
	}
	if len(req.IDs) == 0 {
		return models.FailMessage("ids is required")
	}

	objIDs := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, id := range req.IDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue // skip malformed ids, matching delete-by-cast semantics
		}
		objIDs = append(objIDs, objID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	companies := config.GetCollection(db, "companies")

	// Collect plan references first so the subscriber counters can be
	// released after the delete.
	cursor, err := companies.Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return models.Fail(err)
	}
	var doomed []models.Company
	if err := cursor.All(ctx, &doomed); err != nil {
		return models.Fail(err)
	}

	res, err := companies.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		log.Printf("Error deleting companies: %v", err)
		return models.Fail(err)
	}

	for _, company := range doomed {
		if company.PlanID != "" {
			adjustSubscribers(ctx, db, company.PlanID, -1)
		}
	}

	if _, err := repositories.NewUserRepository(db).DeleteByCompanyIDs(ctx, objIDs); err != nil {
		log.Printf("Error deleting company users: %v", err)
	}

	return models.OkMessage(nil, fmt.Sprintf("%d companies deleted", res.DeletedCount))
}

// adjustSubscribers moves the denormalized subscriber count on a plan.
func adjustSubscribers(ctx context.Context, db *mongo.Client, planID string, delta int) {
	_, err := config.GetCollection(db, "packages").UpdateOne(ctx,
		bson.M{"plan_id": planID},
		bson.M{"$inc": bson.M{"subscribers": delta}},
	)
	if err != nil {
		log.Printf("Failed to adjust subscribers for plan %s: %v", planID, err)
	}
}
