package handlers

import (
	"net/http"

	"medigo/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "medigo-agent",
		"dependencies": utils.GetHealthStatus(),
	})
}
