// routes/lead_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/stafflyhq/staffly_backend/controllers"
	"github.com/stafflyhq/staffly_backend/middleware"
)

// RegisterLeadRoutes wires the lead pipeline.
func RegisterLeadRoutes(e *echo.Echo, leadController *controllers.LeadController) {
	leads := e.Group("/api/leads")
	leads.Use(middleware.JWTMiddleware())

	leads.GET("", leadController.GetLeads)
	leads.POST("", leadController.CreateLead)
	leads.PUT("/:id", leadController.UpdateLead)
	leads.DELETE("/:id", leadController.DeleteLead)
}
