// Package services provides stateless application services for card
// rendering and publishing.
package services

import (
	domainservices "github.com/cardpress/cardpress-go/internal/domain/services"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	"github.com/cardpress/cardpress-go/internal/presentation/templates"
)

// RenderService is the render(request) facade shared by the HTTP layer
// and the build service. Rendering is pure; identical requests produce
// byte-identical documents.
type RenderService struct {
	cfg domainservices.ResolverConfig
}

// NewRenderService creates a render service using the process-wide
// resolver configuration.
func NewRenderService() *RenderService {
	return &RenderService{cfg: domainservices.DefaultResolverConfig()}
}

// NewRenderServiceWithConfig creates a render service with an explicit
// resolver configuration.
func NewRenderServiceWithConfig(cfg domainservices.ResolverConfig) *RenderService {
	return &RenderService{cfg: cfg}
}

// RenderCard renders one complete HTML document for a request. The
// rendering core has no fatal error paths; every absent value degrades
// to a documented default.
func (s *RenderService) RenderCard(req *cards.RenderRequest) string {
	return templates.Render(req, s.cfg)
}
