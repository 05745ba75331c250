package handlers

import (
	"net/http"

	"tripcheckout/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the latest snapshot of the health monitor.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, monitor.Status())
	}
}
