// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles resolved by the connection gate. A profile with no role is defaulted
// to RolePublic and the default is written back.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RolePublic     = "public"
)

// User model
type User struct {
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Email          string              `json:"email" bson:"email"`
	Password       string              `json:"password,omitempty" bson:"password"`
	FullName       string              `json:"fullName" bson:"fullName"`
	Role           string              `json:"role" bson:"role"`
	CompanyID      *primitive.ObjectID `json:"companyId,omitempty" bson:"companyId,omitempty"`
	IsActive       bool                `json:"isActive" bson:"isActive"`
	LastActivityAt time.Time           `json:"lastActivityAt,omitempty" bson:"lastActivityAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

type UpdateRoleRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required"`
}
