// Package templates provides shared element rendering types and utilities
package templates

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
)

// positionStyle emits the absolute-positioning declaration every element
// kind shares: placement at (x, y) with explicit width/height and the
// element's zIndex as stacking order.
func positionStyle(el *cards.LayoutElement) string {
	return fmt.Sprintf("position: absolute; left: %dpx; top: %dpx; width: %dpx; height: %dpx; z-index: %d",
		el.X, el.Y, el.Width, el.Height, el.ZIndex)
}

// opacityStyle emits an opacity declaration when the element is not
// fully opaque, "" otherwise.
func opacityStyle(el *cards.LayoutElement) string {
	pct := el.OpacityPercent()
	if pct >= 100 {
		return ""
	}
	return "; opacity: " + strconv.FormatFloat(float64(pct)/100, 'f', -1, 64)
}

// escape escapes text content for safe HTML embedding.
func escape(s string) string {
	return html.EscapeString(s)
}

// isExternalLink reports whether a resolved href leaves the document
// origin; such links open in a new browsing context.
func isExternalLink(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// joinStyles concatenates non-empty CSS declarations with "; ".
func joinStyles(decls ...string) string {
	var kept []string
	for _, d := range decls {
		if d != "" {
			kept = append(kept, d)
		}
	}
	return strings.Join(kept, "; ")
}
