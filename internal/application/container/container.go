// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"
	"log/slog"

	"github.com/cardpress/cardpress-go/internal/application/services"
	"github.com/cardpress/cardpress-go/internal/infrastructure/fetch"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/logging"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/performance"
	"github.com/cardpress/cardpress-go/internal/infrastructure/publish"
	"github.com/cardpress/cardpress-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services (stateless singletons)
	RenderService *services.RenderService
	BuildService  *services.BuildService

	// Infrastructure Dependencies
	FetchClient *fetch.Client
	Publisher   *publish.Publisher
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer() (*Container, error) {
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    config.LogToFile,
		OutputToConsole: true,
		LogDirectory:    config.LogDirectory,
		JSONFormat:      config.LogJSONFormat,
		DefaultLevel:    slog.LevelInfo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create channeled logger: %w", err)
	}

	perfTracker := performance.NewTracker(1000)

	fetchClient := fetch.NewClient(config.CardsAPIURL, config.FetchTimeout, logger)
	publisher := publish.NewPublisher(config.OutputDir, logger)

	renderService := services.NewRenderService()
	buildService := services.NewBuildService(fetchClient, publisher, renderService, logger, perfTracker)

	return &Container{
		RenderService: renderService,
		BuildService:  buildService,

		FetchClient: fetchClient,
		Publisher:   publisher,
		Logger:      logger,
		PerfTracker: perfTracker,
	}, nil
}
