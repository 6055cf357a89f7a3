package routes

import (
	"teamup-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers auth and user routes.
func RegisterUserRoutes(
	rg *gin.RouterGroup,
	userHandler handlers.UserHandlerInterface,
	reviewHandler handlers.ReviewHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
		authGroup.POST("/refresh", userHandler.Refresh)
		authGroup.POST("/logout", userHandler.Logout)
	}

	usersGroup := rg.Group("/users")
	usersGroup.Use(authMiddleware)
	{
		usersGroup.GET("/:id", userHandler.GetUserByID)
		// Reviews received by a user
		usersGroup.GET("/:id/reviews", reviewHandler.ListReviewsForUser)
	}
}
