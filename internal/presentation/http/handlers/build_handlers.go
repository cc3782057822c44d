package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardpress/cardpress-go/internal/application/services"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/logging"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/performance"
)

// BuildHandlers contains the batch build endpoints.
type BuildHandlers struct {
	buildService *services.BuildService
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewBuildHandlers creates build handlers with injected dependencies.
func NewBuildHandlers(buildService *services.BuildService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *BuildHandlers {
	return &BuildHandlers{
		buildService: buildService,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

// PostBuild runs one fetch-render-publish batch synchronously and
// returns its result.
func (h *BuildHandlers) PostBuild(c *gin.Context) {
	start := time.Now()
	h.logger.HTTP().Debug("Received build request", "method", c.Request.Method, "path", c.Request.URL.Path)

	result, err := h.buildService.RunBuild(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	h.logger.HTTP().Info("Build request completed",
		"buildId", result.BuildID,
		"rendered", result.Rendered,
		"skipped", result.Skipped,
		"duration", time.Since(start))
	c.JSON(http.StatusOK, result)
}

// GetBuildStatus returns the most recent build result.
func (h *BuildHandlers) GetBuildStatus(c *gin.Context) {
	result := h.buildService.LastResult()
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"status": "no build has run"})
		return
	}
	c.JSON(http.StatusOK, result)
}
