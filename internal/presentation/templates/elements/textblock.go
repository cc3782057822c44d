package templates

import (
	"fmt"
	"regexp"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

// TextBlockRenderer renders the single-line identity text kinds: name,
// title and company. The displayed value comes from the data resolver;
// overflow is clipped.
type TextBlockRenderer struct {
	res *services.DataResolver
}

// NewTextBlockRenderer creates a new text block renderer.
func NewTextBlockRenderer(res *services.DataResolver) *TextBlockRenderer {
	return &TextBlockRenderer{res: res}
}

// Render produces one positioned single-line text fragment for the
// element's kind.
func (tr *TextBlockRenderer) Render(el *cards.LayoutElement) string {
	var value string
	switch el.Kind {
	case cards.KindName:
		value = tr.res.FullName()
	case cards.KindTitle:
		value = tr.res.DisplayTitle()
	case cards.KindCompany:
		value = tr.res.CompanyName()
	}

	style := joinStyles(
		positionStyle(el),
		"font-size: "+FontSizeCSS(el.FontSize),
		fontWeightStyle(el),
		textAlignStyle(el),
		"color: "+textColor(el, tr.res),
		"white-space: nowrap",
		"overflow: hidden",
		"text-overflow: ellipsis",
	)
	return fmt.Sprintf(`<div style="%s">%s</div>`, escape(style), escape(value))
}

var fontWeightPattern = regexp.MustCompile(`^([1-9]00|normal|bold|lighter|bolder)$`)

// fontWeightStyle emits the element's font weight when it is a valid
// weight token, "" otherwise.
func fontWeightStyle(el *cards.LayoutElement) string {
	if !fontWeightPattern.MatchString(el.FontWeight) {
		return ""
	}
	return "font-weight: " + el.FontWeight
}

// textAlignStyle emits the element's text alignment when it is a known
// keyword, "" otherwise.
func textAlignStyle(el *cards.LayoutElement) string {
	switch el.TextAlign {
	case "left", "center", "right", "justify":
		return "text-align: " + el.TextAlign
	default:
		return ""
	}
}

// textColor resolves the element text color, defaulting to the scheme's
// text color when the field is absent or not a valid color token.
func textColor(el *cards.LayoutElement, res *services.DataResolver) string {
	return services.SafeCSSColor(el.TextColor, res.Scheme().Text)
}
