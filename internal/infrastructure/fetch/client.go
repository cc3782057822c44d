// Package fetch retrieves card render requests from the remote export
// endpoint. Its failures are fatal to a build and are never recovered
// by the rendering core.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/logging"
)

// Client fetches the card record list from a remote JSON endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *logging.ChanneledLogger
}

// NewClient creates a fetch client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration, logger *logging.ChanneledLogger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// exportPayload is the wire shape of the card export endpoint. An
// explicit error field marks a payload error even on a 200 response.
type exportPayload struct {
	Error string                `json:"error,omitempty"`
	Cards []cards.RenderRequest `json:"cards"`
}

// FetchRenderRequests retrieves the full card list. Any failure here
// (unreachable endpoint, non-success status, malformed payload,
// explicit error field, missing card list) is returned to the caller
// and aborts the batch.
func (c *Client) FetchRenderRequests(ctx context.Context) ([]cards.RenderRequest, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("card export endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("card export endpoint returned status %d", resp.StatusCode)
	}

	var payload exportPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed card export payload: %w", err)
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("card export endpoint reported error: %s", payload.Error)
	}
	if payload.Cards == nil {
		return nil, fmt.Errorf("malformed card export payload: missing cards list")
	}

	if c.logger != nil {
		c.logger.Fetch().Info("Fetched card records",
			"count", len(payload.Cards),
			"endpoint", c.endpoint,
			"duration", time.Since(start))
	}

	return payload.Cards, nil
}
