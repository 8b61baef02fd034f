// routes/main_routes.go
package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/controllers"
	"github.com/stafflyhq/staffly_backend/middleware"
	"github.com/stafflyhq/staffly_backend/socket"
)

// SetupRoutes wires the auth endpoints and the socket gate.
func SetupRoutes(e *echo.Echo, db *mongo.Client, hub *socket.Hub, router *socket.Router, authController *controllers.AuthController) {
	// Public
	e.POST("/api/auth/login", authController.Login)

	// The gate authenticates the handshake itself, so the route skips the
	// HTTP JWT middleware.
	gate := socket.NewGate(db, hub, router)
	e.GET("/ws", gate.HandleConnection)

	// Protected
	authGroup := e.Group("/api")
	authGroup.Use(middleware.JWTMiddleware())
	authGroup.POST("/auth/logout", authController.Logout)
	authGroup.POST("/update-role", authController.UpdateRole)
}
