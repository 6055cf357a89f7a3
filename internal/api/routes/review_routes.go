package routes

import (
	"teamup-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterReviewRoutes registers all routes related to reviews.
func RegisterReviewRoutes(
	rg *gin.RouterGroup,
	reviewHandler handlers.ReviewHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	reviewsGroup := rg.Group("/reviews")
	reviewsGroup.Use(authMiddleware)
	{
		reviewsGroup.POST("/profile", reviewHandler.CreateProfileReview)
		reviewsGroup.POST("/peer", reviewHandler.CreatePeerReview)
		reviewsGroup.GET("/written", reviewHandler.ListMyWrittenReviews)
		reviewsGroup.DELETE("/:id", reviewHandler.DeleteReview)
	}
}
