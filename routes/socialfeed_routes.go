// routes/socialfeed_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/stafflyhq/staffly_backend/controllers"
	"github.com/stafflyhq/staffly_backend/middleware"
)

// RegisterSocialFeedRoutes wires the internal post feed.
func RegisterSocialFeedRoutes(e *echo.Echo, feedController *controllers.SocialFeedController) {
	feed := e.Group("/api/socialfeed")
	feed.Use(middleware.JWTMiddleware())

	feed.GET("", feedController.GetFeed)
	feed.POST("", feedController.CreatePost)
	feed.POST("/:id/like", feedController.LikePost)
	feed.POST("/:id/comments", feedController.CommentPost)
}
