package templates

import (
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

var socialIconTmpl = template.Must(template.New("socialIcon").Parse(
	`<a href="{{.Href}}"{{if .NewContext}} target="_blank" rel="noopener noreferrer"{{end}} style="{{.Style}}">`,
))

// SocialIconRenderer renders social_icon elements: the button link
// mechanism specialized to a platform glyph on a transparent background.
type SocialIconRenderer struct {
	res *services.DataResolver
}

// NewSocialIconRenderer creates a new social icon renderer.
func NewSocialIconRenderer(res *services.DataResolver) *SocialIconRenderer {
	return &SocialIconRenderer{res: res}
}

// Render produces one positioned icon link fragment.
func (sr *SocialIconRenderer) Render(el *cards.LayoutElement) string {
	href := ResolveAction(el, sr.res.Request())

	iconName := el.IconName
	if iconName == "" {
		iconName = el.ActionSource
	}

	background := services.SafeCSSColor(el.BackgroundColor, "transparent")
	color := services.SafeCSSColor(el.TextColor, sr.res.Scheme().Text)

	style := joinStyles(
		positionStyle(el),
		"background-color: "+background,
		"color: "+color,
		fmt.Sprintf("border-radius: %dpx", BorderRadiusPx(el.BorderRadius)),
		"display: flex",
		"align-items: center",
		"justify-content: center",
	) + opacityStyle(el)

	var html strings.Builder
	err := socialIconTmpl.Execute(&html, buttonData{
		Href:       href,
		NewContext: isExternalLink(href),
		Style:      template.CSS(style),
	})
	if err != nil {
		log.Printf("ERROR: Failed to execute social icon template for element %s: %v", el.ID, err)
		return ""
	}

	html.WriteString(IconMarkup(iconName, IconSizePx(el.IconSize)))
	html.WriteString(`</a>`)
	return html.String()
}
