package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/controllers"
	"github.com/stafflyhq/staffly_backend/middleware"
	"github.com/stafflyhq/staffly_backend/models"
	"github.com/stafflyhq/staffly_backend/routes"
	"github.com/stafflyhq/staffly_backend/socket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis
	config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()

	// Create socket hub and the event routing table
	hub := socket.NewHub()
	go hub.Run()

	router := socket.NewRouter()
	packagesModule := socket.NewPackagesModule(client, hub)
	companiesModule := socket.NewCompaniesModule(client, hub)
	dashboardModule := socket.NewDashboardModule(client)
	subscriptionsModule := socket.NewSubscriptionsModule(client, hub)
	router.Handle(models.RoleSuperAdmin, "packages", packagesModule.Register)
	router.Handle(models.RoleSuperAdmin, "companies", companiesModule.Register)
	router.Handle(models.RoleSuperAdmin, "dashboard", dashboardModule.Register)
	router.Handle(models.RoleSuperAdmin, "subscriptions", subscriptionsModule.Register)

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"},
		AllowInlineJS:  false,
	}))

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Staffly Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	e.Use(httpsRedirect())

	// Initialize controllers
	authController := controllers.NewAuthController(client)
	companyController := controllers.NewCompanyController(client)
	contactController := controllers.NewContactController(client)
	leadController := controllers.NewLeadController(client)
	feedController := controllers.NewSocialFeedController(client)

	// Register routes
	routes.SetupRoutes(e, client, hub, router, authController)
	routes.RegisterCompanyRoutes(e, companyController)
	routes.RegisterContactRoutes(e, contactController)
	routes.RegisterLeadRoutes(e, leadController)
	routes.RegisterSocialFeedRoutes(e, feedController)

	// Generated files and uploaded logos
	os.MkdirAll("temp", 0755)
	os.MkdirAll("uploads/logos", 0755)
	e.Static("/temp", "temp")
	e.Static("/uploads", "uploads")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(301, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}
