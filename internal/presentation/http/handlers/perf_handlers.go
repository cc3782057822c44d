package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/performance"
)

// recentMarkerLimit bounds one markers response.
const recentMarkerLimit = 50

// PerfHandlers exposes recent performance markers for operational
// inspection.
type PerfHandlers struct {
	perfTracker *performance.Tracker
}

// NewPerfHandlers creates perf handlers with injected dependencies.
func NewPerfHandlers(perfTracker *performance.Tracker) *PerfHandlers {
	return &PerfHandlers{perfTracker: perfTracker}
}

// GetMarkers returns the most recently completed operation markers.
func (h *PerfHandlers) GetMarkers(c *gin.Context) {
	markers := h.perfTracker.Recent(recentMarkerLimit)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(markers),
		"markers": markers,
	})
}
