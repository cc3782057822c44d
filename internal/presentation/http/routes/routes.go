// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/cardpress/cardpress-go/internal/application/container"
	"github.com/cardpress/cardpress-go/internal/presentation/http/handlers"
	"github.com/cardpress/cardpress-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	healthHandlers := handlers.NewHealthHandlers()
	renderHandlers := handlers.NewRenderHandlers(container.RenderService, container.Logger, container.PerfTracker)
	buildHandlers := handlers.NewBuildHandlers(container.BuildService, container.Logger, container.PerfTracker)
	perfHandlers := handlers.NewPerfHandlers(container.PerfTracker)

	api := r.Group("/api/v1")
	{
		api.GET("/health", healthHandlers.GetHealth)
		api.GET("/perf/markers", perfHandlers.GetMarkers)

		// On-demand rendering
		render := api.Group("/render")
		{
			render.POST("/preview", renderHandlers.PostPreview)
		}

		// Batch builds
		build := api.Group("/build")
		{
			build.POST("", buildHandlers.PostBuild)
			build.GET("/status", buildHandlers.GetBuildStatus)
		}
	}

	return r
}
