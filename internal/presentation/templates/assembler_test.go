package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

func TestAssembleDocumentMetadataBlock(t *testing.T) {
	req := &cards.RenderRequest{
		Card:     &cards.Card{PublicSlug: "ada-lovelace"},
		Profile:  &cards.Profile{FirstName: "Ada", LastName: "Lovelace", JobTitle: "Engineer", AvatarURL: "https://cdn.example.com/ada.jpg"},
		Business: &cards.Business{Name: "Analytical Engines"},
	}
	res := services.NewDataResolver(req, testConfig())

	doc := AssembleDocument(res, "<div>fragment</div>")

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Ada Lovelace - Engineer</title>")
	assert.Contains(t, doc, `<meta name="description" content="Ada Lovelace, Engineer at Analytical Engines">`)
	assert.Contains(t, doc, `<link rel="canonical" href="https://card.example.com/ada-lovelace?embed=true">`)
	assert.Contains(t, doc, `<meta property="og:image" content="https://cdn.example.com/ada.jpg">`)
	assert.Contains(t, doc, `<meta name="theme-color" content="#3B82F6">`)
	assert.Contains(t, doc, "<div>fragment</div>")
}

func TestAssembleDocumentCanvasAndResponsiveRule(t *testing.T) {
	req := &cards.RenderRequest{
		Template: &cards.CardTemplate{
			Layout: &cards.LayoutConfig{Width: 420, Height: 700},
		},
	}
	res := services.NewDataResolver(req, testConfig())

	doc := AssembleDocument(res, "")

	assert.Contains(t, doc, "width: 420px; height: 700px")
	assert.Contains(t, doc, "@media (min-width: 480px)")
	assert.Contains(t, doc, "box-shadow")
	assert.Contains(t, doc, "background-color: #FFFFFF")
}

func TestAssembleDocumentDefaultCanvas(t *testing.T) {
	res := services.NewDataResolver(&cards.RenderRequest{}, testConfig())
	doc := AssembleDocument(res, "")
	assert.Contains(t, doc, "width: 400px; height: 600px")
}

func TestAssembleDocumentRejectsUnsafeBackgrounds(t *testing.T) {
	req := &cards.RenderRequest{
		Template: &cards.CardTemplate{Background: "red</style><script>alert(1)</script>"},
	}
	res := services.NewDataResolver(req, testConfig())
	doc := AssembleDocument(res, "")

	assert.NotContains(t, doc, "<script>")
	assert.Contains(t, doc, "background-color: #FFFFFF")

	req = &cards.RenderRequest{
		Template: &cards.CardTemplate{BackgroundType: "image", BackgroundURL: "javascript:alert(1)"},
	}
	res = services.NewDataResolver(req, testConfig())
	doc = AssembleDocument(res, "")
	assert.NotContains(t, doc, "javascript:")
}

func TestAssembleDocumentEscapesMetadata(t *testing.T) {
	req := &cards.RenderRequest{
		Card: &cards.Card{OGTitle: `Ada "the" <Engineer>`},
	}
	res := services.NewDataResolver(req, testConfig())
	doc := AssembleDocument(res, "")

	assert.NotContains(t, doc, `<title>Ada "the" <Engineer></title>`)
	assert.Contains(t, doc, "&lt;Engineer&gt;")
}
