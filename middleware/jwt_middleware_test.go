package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflyhq/staffly_backend/config"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, refresh, err := GenerateJWT("64f0c1e2a1b2c3d4e5f60718", "admin@acme.test", "admin", "64f0c1e2a1b2c3d4e5f60799")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, token, refresh)

	claims := &JwtCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "64f0c1e2a1b2c3d4e5f60718", claims.UserID)
	assert.Equal(t, "admin@acme.test", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "64f0c1e2a1b2c3d4e5f60799", claims.CompanyID)
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), claims.ExpiresAt, 5)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateJWT("id", "a@b.c", "admin", "")
	assert.Error(t, err)
}

// withTestRedis points the process Redis client at an in-memory server for
// the duration of one test.
func withTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := config.RedisClient
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		config.RedisClient.Close()
		config.RedisClient = prev
	})
}

func TestJWTMiddlewareBlocksBlacklistedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	withTestRedis(t)

	token, _, err := GenerateJWT("64f0c1e2a1b2c3d4e5f60718", "admin@acme.test", "admin", "")
	require.NoError(t, err)

	e := echo.New()
	handlerRan := false
	protected := JWTMiddleware()(func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := protected(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.True(t, handlerRan)

	BlacklistToken(token, time.Now().Add(24*time.Hour))

	handlerRan = false
	assert.Equal(t, http.StatusUnauthorized, do())
	assert.False(t, handlerRan, "handler must not run once the token is revoked")
}

func TestJwtCustomClaimsValid(t *testing.T) {
	fresh := JwtCustomClaims{StandardClaims: jwt.StandardClaims{
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}
	assert.NoError(t, fresh.Valid())

	expired := JwtCustomClaims{StandardClaims: jwt.StandardClaims{
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}}
	assert.Error(t, expired.Valid())

	early := JwtCustomClaims{StandardClaims: jwt.StandardClaims{
		NotBefore: time.Now().Add(time.Hour).Unix(),
	}}
	assert.Error(t, early.Valid())
}
