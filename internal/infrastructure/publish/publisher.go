// Package publish writes rendered card documents to the static output
// directory.
package publish

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	"github.com/cardpress/cardpress-go/internal/infrastructure/observability/logging"
)

// Publisher writes one self-contained document per card, named by the
// card's public slug, or under t/<token>/ for unnamed cards.
type Publisher struct {
	outputDir string
	logger    *logging.ChanneledLogger
}

// NewPublisher creates a publisher rooted at outputDir.
func NewPublisher(outputDir string, logger *logging.ChanneledLogger) *Publisher {
	return &Publisher{outputDir: outputDir, logger: logger}
}

// PathFor chooses the output location for a card. A card with neither
// slug nor token cannot be published; that error is a per-card failure,
// not fatal to the batch.
func (p *Publisher) PathFor(card *cards.Card) (string, error) {
	if card == nil {
		return "", fmt.Errorf("card record is missing")
	}
	if card.PublicSlug != "" {
		return filepath.Join(p.outputDir, card.PublicSlug, "index.html"), nil
	}
	if card.Token != "" {
		return filepath.Join(p.outputDir, "t", card.Token, "index.html"), nil
	}
	return "", fmt.Errorf("card has neither public slug nor token")
}

// Publish writes the document for a card and returns the path written.
func (p *Publisher) Publish(card *cards.Card, document string) (string, error) {
	path, err := p.PathFor(card)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	if p.logger != nil {
		p.logger.Build().Debug("Published card document", "path", path, "bytes", len(document))
	}
	return path, nil
}
