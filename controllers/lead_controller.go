// controllers/lead_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/models"
)

// LeadController handles the lead pipeline
type LeadController struct {
	DB *mongo.Client
}

// NewLeadController creates a new lead controller
func NewLeadController(db *mongo.Client) *LeadController {
	return &LeadController{DB: db}
}

// GetLeads lists leads; ?stage= restricts to one board column
func (lc *LeadController) GetLeads(c echo.Context) error {
	query := bson.M{}
	if stage := c.QueryParam("stage"); stage != "" {
		if !models.IsValidLeadStage(stage) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Unknown stage: " + stage,
			})
		}
		query["stage"] = stage
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := config.GetCollection(lc.DB, "leads").Find(ctx, query, opts)
	if err != nil {
		log.Printf("Error finding leads: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve leads",
		})
	}
	defer cursor.Close(ctx)

	leads := []models.Lead{}
	if err = cursor.All(ctx, &leads); err != nil {
		log.Printf("Error decoding leads: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve leads",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Leads retrieved",
		Data:    leads,
	})
}

// CreateLead inserts a new lead
func (lc *LeadController) CreateLead(c echo.Context) error {
	var lead models.Lead
	if err := c.Bind(&lead); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&lead); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if lead.Stage == "" {
		lead.Stage = models.LeadStageNotContacted
	}
	if !models.IsValidLeadStage(lead.Stage) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown stage: " + lead.Stage,
		})
	}

	lead.ID = primitive.NewObjectID()
	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(lc.DB, "leads").InsertOne(ctx, lead); err != nil {
		log.Printf("Error inserting lead: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create lead",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Lead created",
		Data:    lead,
	})
}

// UpdateLead updates lead fields, board stage included
func (lc *LeadController) UpdateLead(c echo.Context) error {
	objID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid lead id",
		})
	}

	var lead models.Lead
	if err := c.Bind(&lead); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&lead); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	if lead.Stage != "" && !models.IsValidLeadStage(lead.Stage) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown stage: " + lead.Stage,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":      lead.Name,
			"company":   lead.Company,
			"email":     lead.Email,
			"phone":     lead.Phone,
			"value":     lead.Value,
			"stage":     lead.Stage,
			"source":    lead.Source,
			"owner":     lead.Owner,
			"tags":      lead.Tags,
			"priority":  lead.Priority,
			"updatedAt": time.Now(),
		},
	}
	res, err := config.GetCollection(lc.DB, "leads").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		log.Printf("Error updating lead: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update lead",
		})
	}
	if res.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Lead not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Lead updated",
	})
}

// DeleteLead removes one lead
func (lc *LeadController) DeleteLead(c echo.Context) error {
	objID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid lead id",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := config.GetCollection(lc.DB, "leads").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		log.Printf("Error deleting lead: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete lead",
		})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Lead not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Lead deleted",
	})
}
