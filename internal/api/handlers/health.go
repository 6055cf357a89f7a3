package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process liveness.
//
//	@Summary		Health check
//	@Description	Check if the API is up and running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Router			/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "teamup-api",
	})
}
