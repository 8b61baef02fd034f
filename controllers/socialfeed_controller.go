// controllers/socialfeed_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stafflyhq/staffly_backend/config"
	"github.com/stafflyhq/staffly_backend/middleware"
	"github.com/stafflyhq/staffly_backend/models"
)

// SocialFeedController handles the internal post feed
type SocialFeedController struct {
	DB *mongo.Client
}

// NewSocialFeedController creates a new social feed controller
func NewSocialFeedController(db *mongo.Client) *SocialFeedController {
	return &SocialFeedController{DB: db}
}

// GetFeed lists posts, newest first
func (sc *SocialFeedController) GetFeed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(50)
	cursor, err := config.GetCollection(sc.DB, "posts").Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Error finding posts: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve feed",
		})
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		log.Printf("Error decoding posts: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve feed",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Feed retrieved",
		Data:    posts,
	})
}

// CreatePost inserts a new post by the authenticated user
func (sc *SocialFeedController) CreatePost(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "No active session",
		})
	}

	var req models.PostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	userID, err := parseObjectID(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	now := time.Now()
	post := models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(sc.DB, "posts").InsertOne(ctx, post); err != nil {
		log.Printf("Error inserting post: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create post",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Post created",
		Data:    post,
	})
}

// LikePost toggles the caller's like on a post
func (sc *SocialFeedController) LikePost(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "No active session",
		})
	}

	postID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post id",
		})
	}
	userID, err := parseObjectID(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts := config.GetCollection(sc.DB, "posts")

	var post models.Post
	if err := posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Post not found",
		})
	}

	op := "$addToSet"
	for _, id := range post.Likes {
		if id == userID {
			op = "$pull"
			break
		}
	}

	if _, err := posts.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{op: bson.M{"likes": userID}}); err != nil {
		log.Printf("Error toggling like: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update post",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Like updated",
	})
}

// CommentPost appends a comment to a post
func (sc *SocialFeedController) CommentPost(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "No active session",
		})
	}

	postID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post id",
		})
	}
	userID, err := parseObjectID(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := config.GetCollection(sc.DB, "posts").UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Error adding comment: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to add comment",
		})
	}
	if res.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Post not found",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Comment added",
		Data:    comment,
	})
}
