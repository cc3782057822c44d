package publish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
)

func TestPublishBySlug(t *testing.T) {
	dir := t.TempDir()
	p := NewPublisher(dir, nil)

	path, err := p.Publish(&cards.Card{PublicSlug: "ada-lovelace"}, "<html>doc</html>")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ada-lovelace", "index.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>doc</html>", string(data))
}

func TestPublishByTokenWhenNoSlug(t *testing.T) {
	dir := t.TempDir()
	p := NewPublisher(dir, nil)

	path, err := p.Publish(&cards.Card{Token: "tok123"}, "doc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "t", "tok123", "index.html"), path)
}

func TestPublishFailsWithoutSlugOrToken(t *testing.T) {
	p := NewPublisher(t.TempDir(), nil)

	_, err := p.Publish(&cards.Card{}, "doc")
	assert.Error(t, err)

	_, err = p.Publish(nil, "doc")
	assert.Error(t, err)
}
