package routes

import (
	"teamup-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplyRoutes registers routes operating on applies themselves.
// Submitting an apply lives under the post routes.
func RegisterApplyRoutes(
	rg *gin.RouterGroup,
	applyHandler handlers.ApplyHandlerInterface,
	reviewHandler handlers.ReviewHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	appliesGroup := rg.Group("/applies")
	appliesGroup.Use(authMiddleware)
	{
		appliesGroup.GET("/my", applyHandler.ListMyApplies)
		appliesGroup.GET("/:id", applyHandler.GetApplyDetail)
		appliesGroup.DELETE("/:id", applyHandler.CancelApply)
		appliesGroup.PATCH("/:id/selection", applyHandler.ToggleSelection)
		// Peer reviews exchanged on one apply
		appliesGroup.GET("/:id/reviews", reviewHandler.ListPeerReviewsByApply)
	}
}
