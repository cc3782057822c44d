package templates

import (
	"fmt"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

// DividerRenderer renders thin colored rules with configurable opacity.
type DividerRenderer struct {
	res *services.DataResolver
}

// NewDividerRenderer creates a new divider renderer.
func NewDividerRenderer(res *services.DataResolver) *DividerRenderer {
	return &DividerRenderer{res: res}
}

// Render produces one positioned rule fragment.
func (dr *DividerRenderer) Render(el *cards.LayoutElement) string {
	color := services.SafeCSSColor(el.BackgroundColor,
		services.SafeCSSColor(el.BorderColor, dr.res.Scheme().Secondary))

	style := joinStyles(
		positionStyle(el),
		"background-color: "+color,
	) + opacityStyle(el)

	return fmt.Sprintf(`<div style="%s"></div>`, escape(style))
}
