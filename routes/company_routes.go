// routes/company_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/stafflyhq/staffly_backend/controllers"
	"github.com/stafflyhq/staffly_backend/middleware"
)

// RegisterCompanyRoutes wires the REST mirror of the companies module.
func RegisterCompanyRoutes(e *echo.Echo, companyController *controllers.CompanyController) {
	companies := e.Group("/api/companies")
	companies.Use(middleware.JWTMiddleware())

	companies.GET("", companyController.GetCompanies)
	companies.POST("", companyController.CreateCompany)
	companies.GET("/:id", companyController.GetCompany)
	companies.PUT("/:id", companyController.UpdateCompany)
	companies.DELETE("/:id", companyController.DeleteCompany)
	companies.POST("/:id/logo", companyController.UploadLogo)
}
