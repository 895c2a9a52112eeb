package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version проставляется при сборке через ldflags.
var Version = "2.0.0"

// HealthCheck обрабатывает GET /api/health. Маршрут публичный.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "RenovateIQ API",
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
