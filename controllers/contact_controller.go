// controllers/contact_controller.go
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

// ContactController handles contacts and their activities
type ContactController struct {
	DB *mongo.Client
}

// NewContactController creates a new contact controller
func NewContactController(db *mongo.Client) *ContactController {
	return &ContactController{DB: db}
}

// GetContacts lists all contacts
func (cc *ContactController) GetContacts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := config.GetCollection(cc.DB, "contacts").Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Error finding contacts: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve contacts",
		})
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err = cursor.All(ctx, &contacts); err != nil {
		log.Printf("Error decoding contacts: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve contacts",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Contacts retrieved",
		Data:    contacts,
	})
}

// CreateContact inserts a new contact
func (cc *ContactController) CreateContact(c echo.Context) error {
	var contact models.Contact
	if err := c.Bind(&contact); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&contact); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	contact.ID = primitive.NewObjectID()
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(cc.DB, "contacts").InsertOne(ctx, contact); err != nil {
		log.Printf("Error inserting contact: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create contact",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Contact created",
		Data:    contact,
	})
}

// UpdateContact updates contact fields
func (cc *ContactController) UpdateContact(c echo.Context) error {
	objID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid contact id",
		})
	}

	var contact models.Contact
	if err := c.Bind(&contact); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&contact); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":      contact.Name,
			"company":   contact.Company,
			"title":     contact.Title,
			"email":     contact.Email,
			"phone":     contact.Phone,
			"address":   contact.Address,
			"owner":     contact.Owner,
			"tags":      contact.Tags,
			"updatedAt": time.Now(),
		},
	}
	res, err := config.GetCollection(cc.DB, "contacts").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		log.Printf("Error updating contact: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update contact",
		})
	}
	if res.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Contact not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Contact updated",
	})
}

// DeleteContact removes a contact and its activities
func (cc *ContactController) DeleteContact(c echo.Context) error {
	objID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid contact id",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := config.GetCollection(cc.DB, "contacts").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		log.Printf("Error deleting contact: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete contact",
		})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Contact not found",
		})
	}

	if _, err := config.GetCollection(cc.DB, "activities").DeleteMany(ctx, bson.M{"contactId": objID}); err != nil {
		log.Printf("Error deleting contact activities: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Contact deleted",
	})
}

// GetActivities lists activities, optionally scoped to one contact
func (cc *ContactController) GetActivities(c echo.Context) error {
	query := bson.M{}
	if contactID := c.QueryParam("contactId"); contactID != "" {
		objID, err := parseObjectID(contactID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid contact id",
			})
		}
		query["contactId"] = objID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cursor, err := config.GetCollection(cc.DB, "activities").Find(ctx, query, opts)
	if err != nil {
		log.Printf("Error finding activities: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve activities",
		})
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err = cursor.All(ctx, &activities); err != nil {
		log.Printf("Error decoding activities: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve activities",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Activities retrieved",
		Data:    activities,
	})
}

// CreateActivity inserts a new activity
func (cc *ContactController) CreateActivity(c echo.Context) error {
	var activity models.Activity
	if err := c.Bind(&activity); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&activity); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	activity.ID = primitive.NewObjectID()
	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(cc.DB, "activities").InsertOne(ctx, activity); err != nil {
		log.Printf("Error inserting activity: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create activity",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Activity created",
		Data:    activity,
	})
}

// UpdateActivity updates activity fields, including completion state
func (cc *ContactController) UpdateActivity(c echo.Context) error {
	objID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid activity id",
		})
	}

	var activity models.Activity
	if err := c.Bind(&activity); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"title":        activity.Title,
			"activityType": activity.ActivityType,
			"notes":        activity.Notes,
			"owner":        activity.Owner,
			"dueDate":      activity.DueDate,
			"reminder":     activity.Reminder,
			"done":         activity.Done,
			"updatedAt":    time.Now(),
		},
	}
	res, err := config.GetCollection(cc.DB, "activities").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		log.Printf("Error updating activity: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update activity",
		})
	}
	if res.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Activity not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Activity updated",
	})
}

// DeleteActivity removes one activity
func (cc *ContactController) DeleteActivity(c echo.Context) error {
	objID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid activity id",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := config.GetCollection(cc.DB, "activities").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		log.Printf("Error deleting activity: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete activity",
		})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Activity not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Activity deleted",
	})
}
