package templates

import (
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

// buttonTmpl is a pre-parsed template for the button's opening <a> tag.
// html/template escapes the href attribute; the style value is passed
// as template.CSS and must only ever contain validated color tokens and
// fixed declarations.
var buttonTmpl = template.Must(template.New("button").Parse(
	`<a href="{{.Href}}"{{if .NewContext}} target="_blank" rel="noopener noreferrer"{{end}} style="{{.Style}}">`,
))

type buttonData struct {
	Href       string
	NewContext bool
	Style      template.CSS
}

// ButtonRenderer renders the link kinds action_button, button_primary
// and button_secondary: a styled link using the resolved action URI,
// with optional icon and label. Cross-origin targets open in a new
// browsing context.
type ButtonRenderer struct {
	res *services.DataResolver
}

// NewButtonRenderer creates a new button renderer.
func NewButtonRenderer(res *services.DataResolver) *ButtonRenderer {
	return &ButtonRenderer{res: res}
}

// Render produces one positioned link fragment.
func (br *ButtonRenderer) Render(el *cards.LayoutElement) string {
	href := ResolveAction(el, br.res.Request())
	scheme := br.res.Scheme()

	fallback := scheme.Primary
	if el.Kind == cards.KindButtonSecondary {
		fallback = scheme.Secondary
	}
	background := services.SafeCSSColor(el.BackgroundColor, fallback)
	color := services.SafeCSSColor(el.TextColor, "#FFFFFF")

	style := joinStyles(
		positionStyle(el),
		"background-color: "+background,
		"color: "+color,
		fmt.Sprintf("border-radius: %dpx", BorderRadiusPx(el.BorderRadius)),
		"font-size: "+FontSizeCSS(el.FontSize),
		fontWeightStyle(el),
		"display: flex",
		"align-items: center",
		"justify-content: center",
		"gap: 8px",
		"text-decoration: none",
	) + borderStyle(el) + opacityStyle(el)

	var html strings.Builder
	err := buttonTmpl.Execute(&html, buttonData{
		Href:       href,
		NewContext: isExternalLink(href),
		Style:      template.CSS(style),
	})
	if err != nil {
		log.Printf("ERROR: Failed to execute button template for element %s: %v", el.ID, err)
		return ""
	}

	if el.IconName != "" {
		html.WriteString(IconMarkup(el.IconName, IconSizePx(el.IconSize)))
	}
	if el.Label != "" {
		html.WriteString(`<span>` + escape(br.res.Interpolate(el.Label)) + `</span>`)
	}
	html.WriteString(`</a>`)
	return html.String()
}

// borderStyle emits the element border when width and a valid color are
// both present, "" otherwise.
func borderStyle(el *cards.LayoutElement) string {
	color := services.SafeCSSColor(el.BorderColor, "")
	if el.BorderWidth <= 0 || color == "" {
		return ""
	}
	return fmt.Sprintf("; border: %dpx solid %s", el.BorderWidth, color)
}
