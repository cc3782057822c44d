package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandlers contains the service health endpoint.
type HealthHandlers struct{}

// NewHealthHandlers creates health handlers.
func NewHealthHandlers() *HealthHandlers {
	return &HealthHandlers{}
}

// GetHealth reports service liveness.
func (h *HealthHandlers) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
