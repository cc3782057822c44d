package templates

import (
	"fmt"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

// BioRenderer renders the multi-line biography block, preserving line
// breaks in the source text.
type BioRenderer struct {
	res *services.DataResolver
}

// NewBioRenderer creates a new bio renderer.
func NewBioRenderer(res *services.DataResolver) *BioRenderer {
	return &BioRenderer{res: res}
}

// Render produces one positioned multi-line text fragment.
func (br *BioRenderer) Render(el *cards.LayoutElement) string {
	style := joinStyles(
		positionStyle(el),
		"font-size: "+FontSizeCSS(el.FontSize),
		fontWeightStyle(el),
		textAlignStyle(el),
		"color: "+textColor(el, br.res),
		"white-space: pre-line",
		"overflow: hidden",
		"word-wrap: break-word",
	)
	return fmt.Sprintf(`<div style="%s">%s</div>`, escape(style), escape(br.res.Bio()))
}
