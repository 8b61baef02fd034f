// controllers/auth_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/middleware"
	"github.com/stafflyhq/staffly_backend/models"
	"github.com/stafflyhq/staffly_backend/repositories"
	"github.com/stafflyhq/staffly_backend/utils"
)

// AuthController handles login, logout and role management
type AuthController struct {
	DB    *mongo.Client
	users *repositories.UserRepository
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client) *AuthController {
	return &AuthController{
		DB:    db,
		users: repositories.NewUserRepository(db),
	}
}

// Login verifies credentials and returns a JWT pair
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := utils.ValidateLoginAttempts(req.Email, config.GetRedisClient()); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.Response{
			Status:  http.StatusTooManyRequests,
			Message: "Too many login attempts, try again later",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), repositories.QueryTimeout)
	defer cancel()

	user, err := ac.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	if !user.IsActive {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User account is inactive",
		})
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	companyID := ""
	if user.CompanyID != nil {
		companyID = user.CompanyID.Hex()
	}

	token, refreshToken, err := middleware.GenerateJWT(user.ID.Hex(), user.Email, user.Role, companyID)
	if err != nil {
		log.Printf("Error generating JWT for %s: %v", user.Email, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	utils.ResetLoginAttempts(req.Email, config.GetRedisClient())

	user.Password = ""
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token:        token,
			RefreshToken: refreshToken,
			User:         *user,
		},
	})
}

// Logout blacklists the presented token until its expiry
func (ac *AuthController) Logout(c echo.Context) error {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "No active session",
		})
	}

	claims := user.Claims.(*middleware.JwtCustomClaims)
	expiry := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt > 0 {
		expiry = time.Unix(claims.ExpiresAt, 0)
	}
	middleware.BlacklistToken(user.Raw, expiry)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out",
	})
}

// UpdateRole persists a role onto a user profile. Superadmin only.
func (ac *AuthController) UpdateRole(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil || claims.Role != models.RoleSuperAdmin {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Insufficient permissions",
		})
	}

	var req models.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	switch req.Role {
	case models.RoleSuperAdmin, models.RoleAdmin, models.RolePublic:
	default:
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown role: " + req.Role,
		})
	}

	objID, err := parseObjectID(req.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), repositories.QueryTimeout)
	defer cancel()

	if err := ac.users.UpdateRole(ctx, objID, req.Role); err != nil {
		log.Printf("Error updating role for %s: %v", req.UserID, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update role",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Role updated",
	})
}
