package socket

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflyhq/staffly_backend/middleware"
)

func signToken(t *testing.T, secret string, claims *middleware.JwtCustomClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "gate-secret")
	t.Setenv("IDENTITY_JWKS_URL", "")
	t.Setenv("AUTHORIZED_PARTIES", "")

	g := &Gate{}

	token := signToken(t, "gate-secret", &middleware.JwtCustomClaims{
		UserID: "64f0c1e2a1b2c3d4e5f60718",
		Role:   "superadmin",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})

	claims, err := g.verifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c1e2a1b2c3d4e5f60718", claims.UserID)
	assert.Equal(t, "superadmin", claims.Role)
}

func TestVerifyTokenRejectsBadSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "gate-secret")
	t.Setenv("IDENTITY_JWKS_URL", "")

	g := &Gate{}

	token := signToken(t, "another-secret", &middleware.JwtCustomClaims{
		UserID: "64f0c1e2a1b2c3d4e5f60718",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})

	_, err := g.verifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "gate-secret")
	t.Setenv("IDENTITY_JWKS_URL", "")

	g := &Gate{}

	token := signToken(t, "gate-secret", &middleware.JwtCustomClaims{
		UserID: "64f0c1e2a1b2c3d4e5f60718",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	})

	_, err := g.verifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestCheckAuthorizedParty(t *testing.T) {
	t.Setenv("AUTHORIZED_PARTIES", "https://app.example.com, https://admin.example.com")

	assert.NoError(t, checkAuthorizedParty("https://app.example.com"))
	assert.NoError(t, checkAuthorizedParty("https://admin.example.com"))
	assert.Error(t, checkAuthorizedParty("https://evil.example.com"))

	// Tokens without azp are accepted.
	assert.NoError(t, checkAuthorizedParty(""))

	t.Setenv("AUTHORIZED_PARTIES", "")
	assert.NoError(t, checkAuthorizedParty("https://anything.example.com"))
}
