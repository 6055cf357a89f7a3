package routes

import (
	"teamup-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterPostRoutes registers all routes related to recruitment posts.
func RegisterPostRoutes(
	rg *gin.RouterGroup,
	postHandler handlers.PostHandlerInterface,
	applyHandler handlers.ApplyHandlerInterface,
	commentHandler handlers.CommentHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	postsGroup := rg.Group("/posts")
	{
		// Reading posts and their comments needs no authentication
		postsGroup.GET("", postHandler.ListPosts)
		postsGroup.GET("/:id", postHandler.GetPostByID)
		postsGroup.GET("/:id/comments", commentHandler.ListCommentsByPost)

		authed := postsGroup.Group("")
		authed.Use(authMiddleware)
		{
			authed.POST("", postHandler.CreatePost)
			authed.PATCH("/:id/close", postHandler.ClosePost)
			authed.DELETE("/:id", postHandler.DeletePost)

			// Applying to and listing applies on a specific post
			authed.POST("/:id/applies", applyHandler.SubmitApply)
			authed.GET("/:id/applies", applyHandler.ListAppliesByPost)

			authed.POST("/:id/comments", commentHandler.CreateComment)
		}
	}
}
