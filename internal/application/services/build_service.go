package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/logging"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/performance"
)

// CardFetcher retrieves the full card record list. Its failure aborts
// the batch.
type CardFetcher interface {
	FetchRenderRequests(ctx context.Context) ([]cards.RenderRequest, error)
}

// DocumentPublisher writes one rendered document per card.
type DocumentPublisher interface {
	Publish(card *cards.Card, document string) (string, error)
}

// BuildResult summarizes one batch build run.
type BuildResult struct {
	BuildID     string        `json:"buildId"`
	Rendered    int           `json:"rendered"`
	Skipped     int           `json:"skipped"`
	Duration    time.Duration `json:"duration"`
	CompletedAt time.Time     `json:"completedAt"`
}

// BuildService runs the fetch → render → publish batch. Fetch and
// payload failures abort the whole batch; per-card publish failures
// (a record with neither slug nor token) are skipped and counted.
type BuildService struct {
	fetcher   CardFetcher
	publisher DocumentPublisher
	renderer  *RenderService
	logger    *logging.ChanneledLogger
	perf      *performance.Tracker

	mu   sync.RWMutex
	last *BuildResult
}

// NewBuildService wires a build service.
func NewBuildService(fetcher CardFetcher, publisher DocumentPublisher, renderer *RenderService, logger *logging.ChanneledLogger, perf *performance.Tracker) *BuildService {
	return &BuildService{
		fetcher:   fetcher,
		publisher: publisher,
		renderer:  renderer,
		logger:    logger,
		perf:      perf,
	}
}

// RunBuild executes one batch build and records its result.
func (s *BuildService) RunBuild(ctx context.Context) (*BuildResult, error) {
	buildID := ulid.Make().String()
	start := time.Now()

	marker := s.perf.StartOperation("batch_build", buildID)
	defer marker.Complete()

	s.logger.Build().Info("Starting batch build", "buildId", buildID)

	requests, err := s.fetcher.FetchRenderRequests(ctx)
	if err != nil {
		s.logger.Build().Error("Batch build aborted", "buildId", buildID, "error", err.Error())
		return nil, fmt.Errorf("batch build %s aborted: %w", buildID, err)
	}

	result := &BuildResult{BuildID: buildID}
	for i := range requests {
		req := &requests[i]

		document := s.renderer.RenderCard(req)
		if _, err := s.publisher.Publish(cardOf(req), document); err != nil {
			result.Skipped++
			s.logger.Build().Warn("Skipping card", "buildId", buildID, "index", i, "error", err.Error())
			continue
		}
		result.Rendered++
	}

	result.Duration = time.Since(start)
	result.CompletedAt = time.Now()

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	marker.SetSuccess(true)
	s.logger.Build().Info("Batch build complete",
		"buildId", buildID,
		"rendered", result.Rendered,
		"skipped", result.Skipped,
		"duration", result.Duration)
	s.logger.Perf().Info("Performance for batch build", "buildId", buildID, "duration", result.Duration)

	return result, nil
}

// LastResult returns the most recent build result, or nil when no build
// has run.
func (s *BuildService) LastResult() *BuildResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func cardOf(req *cards.RenderRequest) *cards.Card {
	if req == nil {
		return nil
	}
	return req.Card
}
