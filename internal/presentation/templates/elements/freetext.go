package templates

import (
	"fmt"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

// FreeTextRenderer renders free-form text elements bound to the
// element's own custom value, with {{field}} placeholders substituted
// from resolved card data.
type FreeTextRenderer struct {
	res *services.DataResolver
}

// NewFreeTextRenderer creates a new free text renderer.
func NewFreeTextRenderer(res *services.DataResolver) *FreeTextRenderer {
	return &FreeTextRenderer{res: res}
}

// Render produces one positioned text fragment.
func (fr *FreeTextRenderer) Render(el *cards.LayoutElement) string {
	style := joinStyles(
		positionStyle(el),
		"font-size: "+FontSizeCSS(el.FontSize),
		fontWeightStyle(el),
		textAlignStyle(el),
		"color: "+textColor(el, fr.res),
		"white-space: pre-line",
		"overflow: hidden",
	)
	return fmt.Sprintf(`<div style="%s">%s</div>`, escape(style), escape(fr.res.Interpolate(el.CustomValue)))
}
