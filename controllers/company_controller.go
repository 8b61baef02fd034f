// controllers/company_controller.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/middleware"
	"github.com/stafflyhq/staffly_backend/models"
	"github.com/stafflyhq/staffly_backend/services"
)

// parseObjectID is shared by the REST controllers.
func parseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}

// CompanyController is the REST mirror of the companies socket module.
type CompanyController struct {
	DB *mongo.Client
}

// NewCompanyController creates a new company controller
func NewCompanyController(db *mongo.Client) *CompanyController {
	return &CompanyController{DB: db}
}

func requireSuperAdmin(c echo.Context) bool {
	claims := middleware.GetUserFromToken(c)
	return claims != nil && claims.Role == models.RoleSuperAdmin
}

// GetCompanies lists companies, optionally restricted by a date filter
func (cc *CompanyController) GetCompanies(c echo.Context) error {
	query := bson.M{}
	if filter := c.QueryParam("filter"); filter != "" {
		payload := []byte(fmt.Sprintf(`{"filter":%q,"startDate":%q,"endDate":%q}`,
			filter, c.QueryParam("startDate"), c.QueryParam("endDate")))
		env := services.FetchCompanies(cc.DB, payload)
		return envelopeToResponse(c, env, "Companies retrieved")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := config.GetCollection(cc.DB, "companies").Find(ctx, query, opts)
	if err != nil {
		log.Printf("Error finding companies: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve companies",
		})
	}
	defer cursor.Close(ctx)

	companies := []models.Company{}
	if err = cursor.All(ctx, &companies); err != nil {
		log.Printf("Error decoding companies: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve companies",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Companies retrieved",
		Data:    companies,
	})
}

// GetCompany returns one company by id
func (cc *CompanyController) GetCompany(c echo.Context) error {
	objID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid company id",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var company models.Company
	err = config.GetCollection(cc.DB, "companies").FindOne(ctx, bson.M{"_id": objID}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Company not found",
			})
		}
		log.Printf("Error finding company: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve company",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Company retrieved",
		Data:    company,
	})
}

// CreateCompany creates a company plus its login user; superadmin only
func (cc *CompanyController) CreateCompany(c echo.Context) error {
	if !requireSuperAdmin(c) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Insufficient permissions",
		})
	}

	body, err := readBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	env := services.AddCompany(cc.DB, body)
	return envelopeToResponse(c, env, "Company created")
}

// UpdateCompany updates a company; superadmin only
func (cc *CompanyController) UpdateCompany(c echo.Context) error {
	if !requireSuperAdmin(c) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Insufficient permissions",
		})
	}

	body, err := readBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	payload := []byte(fmt.Sprintf(`{"companyid":%q,"company":%s}`, c.Param("id"), body))
	env := services.UpdateCompany(cc.DB, payload)
	return envelopeToResponse(c, env, "Company updated")
}

// DeleteCompany hard-deletes one company; superadmin only
func (cc *CompanyController) DeleteCompany(c echo.Context) error {
	if !requireSuperAdmin(c) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Insufficient permissions",
		})
	}

	payload := []byte(fmt.Sprintf(`{"ids":[%q]}`, c.Param("id")))
	env := services.DeleteCompanies(cc.DB, payload)
	return envelopeToResponse(c, env, "Company deleted")
}

// UploadLogo stores a resized company logo and records its URL
func (cc *CompanyController) UploadLogo(c echo.Context) error {
	objID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid company id",
		})
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "logo file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to read upload",
		})
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unsupported image format",
		})
	}

	// Logos render at most 256px wide in the UI
	resized := imaging.Fit(img, 256, 256, imaging.Lanczos)

	os.MkdirAll("uploads/logos", 0755)
	filename := fmt.Sprintf("%s_%d.png", objID.Hex(), time.Now().Unix())
	path := filepath.Join("uploads/logos", filename)
	if err := imaging.Save(resized, path); err != nil {
		log.Printf("Error saving logo: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save logo",
		})
	}

	logoURL := "/uploads/logos/" + filename

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := config.GetCollection(cc.DB, "companies").UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"logoUrl": logoURL, "updatedAt": time.Now()}},
	)
	if err != nil || res.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Company not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logo uploaded",
		Data:    map[string]string{"logoUrl": logoURL},
	})
}
