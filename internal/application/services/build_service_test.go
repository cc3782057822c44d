package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	domainservices "github.com/cardpress/cardpress-go/internal/domain/services"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/logging"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/performance"
)

type stubFetcher struct {
	requests []cards.RenderRequest
	err      error
}

func (f *stubFetcher) FetchRenderRequests(ctx context.Context) ([]cards.RenderRequest, error) {
	return f.requests, f.err
}

type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) Publish(card *cards.Card, document string) (string, error) {
	if card == nil || (card.PublicSlug == "" && card.Token == "") {
		return "", fmt.Errorf("card has neither public slug nor token")
	}
	name := card.PublicSlug
	if name == "" {
		name = card.Token
	}
	p.published = append(p.published, name)
	return name, nil
}

func newTestBuildService(fetcher CardFetcher, publisher DocumentPublisher) *BuildService {
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{OutputToConsole: false})
	if err != nil {
		panic(err)
	}
	renderer := NewRenderServiceWithConfig(domainservices.ResolverConfig{
		CanonicalBaseURL:        "https://card.example.com",
		PlaceholderImageBaseURL: "https://placeholder.example.com/api/",
		DefaultFaviconPath:      "/favicon.svg",
		DefaultPlaceholderColor: "#3B82F6",
	})
	return NewBuildService(fetcher, publisher, renderer, logger, performance.NewTracker(100))
}

func TestRunBuildRendersAndPublishesAllCards(t *testing.T) {
	fetcher := &stubFetcher{requests: []cards.RenderRequest{
		{Card: &cards.Card{PublicSlug: "ada"}},
		{Card: &cards.Card{Token: "tok1"}},
	}}
	publisher := &recordingPublisher{}

	result, err := newTestBuildService(fetcher, publisher).RunBuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rendered)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, []string{"ada", "tok1"}, publisher.published)
	assert.NotEmpty(t, result.BuildID)
}

func TestRunBuildSkipsUnpublishableCards(t *testing.T) {
	fetcher := &stubFetcher{requests: []cards.RenderRequest{
		{Card: &cards.Card{PublicSlug: "ada"}},
		{Card: &cards.Card{}}, // neither slug nor token
		{},                    // no card record at all
		{Card: &cards.Card{Token: "tok1"}},
	}}
	publisher := &recordingPublisher{}

	svc := newTestBuildService(fetcher, publisher)
	result, err := svc.RunBuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rendered)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, result, svc.LastResult())
}

func TestRunBuildAbortsOnFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: fmt.Errorf("endpoint unreachable")}
	svc := newTestBuildService(fetcher, &recordingPublisher{})

	_, err := svc.RunBuild(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint unreachable")
	assert.Nil(t, svc.LastResult())
}
