package routes

import (
	"teamup-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterResumeRoutes registers all routes related to resumes.
func RegisterResumeRoutes(
	rg *gin.RouterGroup,
	resumeHandler handlers.ResumeHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	resumesGroup := rg.Group("/resumes")
	resumesGroup.Use(authMiddleware)
	{
		resumesGroup.POST("", resumeHandler.CreateResume)
		resumesGroup.GET("/my", resumeHandler.ListMyResumes)
		resumesGroup.GET("/:id", resumeHandler.GetResumeByID)
		resumesGroup.PATCH("/:id", resumeHandler.UpdateResume)
		resumesGroup.PATCH("/:id/main", resumeHandler.SetMainResume)
		resumesGroup.DELETE("/:id", resumeHandler.DeleteResume)
	}
}
