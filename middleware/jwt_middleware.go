// middleware/jwt_middleware.go
package middleware

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/stafflyhq/staffly_backend/config"
)

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId,omitempty"`
	Azp       string `json:"azp,omitempty"` // authorized party (origin the token was minted for)
	jwt.StandardClaims
}

// Valid implements the Claims interface for Echo's JWT middleware
func (c JwtCustomClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}
	return nil
}

// GetJWTSecret returns the JWT secret from environment variables
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	return secret
}

// BlacklistToken revokes a token until its natural expiry. Revocation lives
// in Redis so it survives restarts and is shared across instances; with no
// Redis the call is a no-op.
func BlacklistToken(token string, expiry time.Time) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return
	}
	ttl := time.Until(expiry)
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if err := rdb.Set(context.Background(), "token_blacklist:"+token, 1, ttl).Err(); err != nil {
		log.Printf("Failed to blacklist token: %v", err)
	}
}

// IsTokenBlacklisted checks if a token has been revoked
func IsTokenBlacklisted(token string) bool {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(context.Background(), "token_blacklist:"+token).Result()
	if err != nil {
		log.Printf("Blacklist lookup failed: %v", err)
		return false
	}
	return n > 0
}

// JWTMiddleware returns a configured JWT middleware
func JWTMiddleware() echo.MiddlewareFunc {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("Warning: JWT_SECRET environment variable is not set")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "JWT configuration error")
			}
		}
	}

	jwtmw := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(secret),
		Claims:     &JwtCustomClaims{},
		SuccessHandler: func(c echo.Context) {
			claims := c.Get("user").(*jwt.Token).Claims.(*JwtCustomClaims)
			c.Set("userId", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("email", claims.Email)
			c.Set("companyId", claims.CompanyID)
		},
		ErrorHandler: func(err error) error {
			log.Printf("JWT middleware error: %v", err)
			return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Invalid or expired token")
		},
	})

	// The revocation check runs between signature validation and the
	// handler. SuccessHandler cannot abort the chain, so a blacklisted
	// token has to be refused here, before next runs.
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtmw(func(c echo.Context) error {
			user, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Invalid or expired token")
			}
			if IsTokenBlacklisted(user.Raw) {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Token has been invalidated")
			}
			return next(c)
		})
	}
}

// GenerateJWT generates new JWT token with refresh token
func GenerateJWT(userID, email, role, companyID string) (string, string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", "", errors.New("JWT_SECRET environment variable is required")
	}

	now := time.Now()

	claims := &JwtCustomClaims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		CompanyID: companyID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(24 * time.Hour).Unix(),
			IssuedAt:  now.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	refreshClaims := &JwtCustomClaims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		CompanyID: companyID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(30 * 24 * time.Hour).Unix(),
			IssuedAt:  now.Unix(),
		},
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshTokenString, err := refreshToken.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return tokenString, refreshTokenString, nil
}

// GetUserFromToken extracts user information from JWT token
func GetUserFromToken(c echo.Context) *JwtCustomClaims {
	user := c.Get("user")
	if user == nil {
		return nil
	}

	token, ok := user.(*jwt.Token)
	if !ok {
		return nil
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil
	}

	return claims
}
