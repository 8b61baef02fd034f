// routes/contact_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/stafflyhq/staffly_backend/controllers"
	"github.com/stafflyhq/staffly_backend/middleware"
)

// RegisterContactRoutes wires contacts and their activities.
func RegisterContactRoutes(e *echo.Echo, contactController *controllers.ContactController) {
	contacts := e.Group("/api/contacts")
	contacts.Use(middleware.JWTMiddleware())

	contacts.GET("", contactController.GetContacts)
	contacts.POST("", contactController.CreateContact)
	contacts.PUT("/:id", contactController.UpdateContact)
	contacts.DELETE("/:id", contactController.DeleteContact)

	activities := e.Group("/api/activities")
	activities.Use(middleware.JWTMiddleware())

	activities.GET("", contactController.GetActivities)
	activities.POST("", contactController.CreateActivity)
	activities.PUT("/:id", contactController.UpdateActivity)
	activities.DELETE("/:id", contactController.DeleteActivity)
}
