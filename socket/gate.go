// socket/gate.go
package socket

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/lestrrat-go/jwx/jwk"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/middleware"
	"github.com/stafflyhq/staffly_backend/models"
	"github.com/stafflyhq/staffly_backend/repositories"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Gate authenticates a connection once at handshake time. A connection
// that passes the gate carries its resolved role for life; one that fails
// is refused before any handler can run.
type Gate struct {
	users  *repositories.UserRepository
	hub    *Hub
	router *Router
}

// NewGate creates a connection gate backed by the users collection.
func NewGate(db *mongo.Client, hub *Hub, router *Router) *Gate {
	return &Gate{
		users:  repositories.NewUserRepository(db),
		hub:    hub,
		router: router,
	}
}

// HandleConnection validates the handshake token, resolves the caller's
// role, upgrades the connection and starts the read loop.
func (g *Gate) HandleConnection(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	claims, err := g.verifyToken(c.Request().Context(), token)
	if err != nil {
		log.Printf("Socket authentication failed: %v", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
	}

	subject := claims.UserID
	if subject == "" {
		subject = claims.Subject
	}
	userID, err := primitive.ObjectIDFromHex(subject)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), repositories.QueryTimeout)
	defer cancel()

	user, err := g.users.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Socket authentication failed: user lookup: %v", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
	}

	// Profiles created before roles existed have none; default and persist
	// so the next connection sees it.
	role := user.Role
	if role == "" {
		role = models.RolePublic
		if err := g.users.UpdateRole(ctx, userID, role); err != nil {
			log.Printf("Failed to persist default role for %s: %v", userID.Hex(), err)
		}
	}

	companyID := ""
	if user.CompanyID != nil {
		companyID = user.CompanyID.Hex()
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := NewClient(conn, userID, role, companyID)
	g.hub.Register(client)

	if role == models.RoleSuperAdmin {
		g.hub.JoinRoom(role+"_room", client)
	}

	client.Emit("connected", map[string]string{
		"message": "Socket connection established",
		"role":    role,
	})

	go g.readLoop(client)

	return nil
}

// readLoop dispatches inbound frames until the peer goes away. Handlers run
// on this goroutine, so per-connection state needs no locking.
func (g *Gate) readLoop(client *Client) {
	defer g.hub.Unregister(client)

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg Message
		if err := msg.unmarshal(data); err != nil {
			log.Printf("Dropping malformed frame from %s: %v", client.UserID.Hex(), err)
			continue
		}
		g.router.Dispatch(client, msg)
	}
}

// verifyToken checks the handshake token. With IDENTITY_JWKS_URL configured
// the token is verified RS256 against the fetched key set; otherwise HS256
// against the shared secret. The azp claim, when present, must be in the
// AUTHORIZED_PARTIES allow-list.
func (g *Gate) verifyToken(ctx context.Context, tokenString string) (*middleware.JwtCustomClaims, error) {
	var keyfunc jwt.Keyfunc

	if jwksURL := os.Getenv("IDENTITY_JWKS_URL"); jwksURL != "" {
		jwkSet, err := jwk.Fetch(ctx, jwksURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch identity provider keys: %w", err)
		}
		keyfunc = func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			kid, _ := t.Header["kid"].(string)
			key, found := jwkSet.LookupKeyID(kid)
			if !found {
				return nil, errors.New("signing key not found")
			}
			var pubkey interface{}
			if err := key.Raw(&pubkey); err != nil {
				return nil, err
			}
			return pubkey, nil
		}
	} else {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			return nil, errors.New("JWT_SECRET environment variable is required")
		}
		keyfunc = func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		}
	}

	token, err := jwt.ParseWithClaims(tokenString, &middleware.JwtCustomClaims{}, keyfunc)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(*middleware.JwtCustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if err := checkAuthorizedParty(claims.Azp); err != nil {
		return nil, err
	}

	return claims, nil
}

// checkAuthorizedParty enforces the AUTHORIZED_PARTIES allow-list. Tokens
// without an azp claim and deployments without the env var both pass.
func checkAuthorizedParty(azp string) error {
	allowed := os.Getenv("AUTHORIZED_PARTIES")
	if allowed == "" || azp == "" {
		return nil
	}
	for _, party := range strings.Split(allowed, ",") {
		if strings.TrimSpace(party) == azp {
			return nil
		}
	}
	return errors.New("token authorized party is not allowed")
}
