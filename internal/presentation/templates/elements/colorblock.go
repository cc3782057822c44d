package templates

import (
	"fmt"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

// ColorBlockRenderer renders decorative colored rectangles. No data
// dependency beyond the scheme default fill.
type ColorBlockRenderer struct {
	res *services.DataResolver
}

// NewColorBlockRenderer creates a new color block renderer.
func NewColorBlockRenderer(res *services.DataResolver) *ColorBlockRenderer {
	return &ColorBlockRenderer{res: res}
}

// Render produces one positioned rectangle fragment.
func (cr *ColorBlockRenderer) Render(el *cards.LayoutElement) string {
	background := services.SafeCSSColor(el.BackgroundColor, cr.res.Scheme().Primary)

	style := joinStyles(
		positionStyle(el),
		"background-color: "+background,
		fmt.Sprintf("border-radius: %dpx", BorderRadiusPx(el.BorderRadius)),
	) + opacityStyle(el)

	return fmt.Sprintf(`<div style="%s"></div>`, escape(style))
}
