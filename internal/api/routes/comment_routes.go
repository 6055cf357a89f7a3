package routes

import (
	"teamup-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCommentRoutes registers the routes addressing comments directly.
// Creating and listing comments happens under /posts/:id/comments.
func RegisterCommentRoutes(
	rg *gin.RouterGroup,
	commentHandler handlers.CommentHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	commentsGroup := rg.Group("/comments")
	commentsGroup.Use(authMiddleware)
	{
		commentsGroup.PATCH("/:id", commentHandler.UpdateComment)
		commentsGroup.DELETE("/:id", commentHandler.DeleteComment)
	}
}
