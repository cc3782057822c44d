// Package handlers provides HTTP handlers for card rendering endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardpress/cardpress-go/internal/application/services"
	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/logging"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/performance"
)

// RenderHandlers contains the on-demand render endpoints.
type RenderHandlers struct {
	renderService *services.RenderService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewRenderHandlers creates render handlers with injected dependencies.
func NewRenderHandlers(renderService *services.RenderService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *RenderHandlers {
	return &RenderHandlers{
		renderService: renderService,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// PostPreview renders one complete HTML document from a posted
// RenderRequest without publishing it.
func (h *RenderHandlers) PostPreview(c *gin.Context) {
	start := time.Now()
	h.logger.HTTP().Debug("Received render preview request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req cards.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid render request payload: " + err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("render_preview", cardRef(&req))
	defer marker.Complete()

	document := h.renderService.RenderCard(&req)

	marker.SetSuccess(true)
	h.logger.Render().Info("Render preview completed", "bytes", len(document), "duration", time.Since(start))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}

func cardRef(req *cards.RenderRequest) string {
	if req == nil || req.Card == nil {
		return ""
	}
	if req.Card.PublicSlug != "" {
		return req.Card.PublicSlug
	}
	return req.Card.Token
}
