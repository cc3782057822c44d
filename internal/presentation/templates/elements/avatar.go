package templates

import (
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

// avatarImgTmpl is a pre-parsed template for the avatar image tag.
// html/template escapes the src and alt attributes; the style value
// carries only fixed declarations and mapped pixel values.
var avatarImgTmpl = template.Must(template.New("avatarImg").Parse(
	`<img src="{{.Src}}" alt="{{.Alt}}" style="{{.Style}}">`,
))

type avatarImgData struct {
	Src   string
	Alt   string
	Style template.CSS
}

// AvatarRenderer renders avatar elements: a rounded image when an
// avatar URL resolves, else a colored circle containing initials.
type AvatarRenderer struct {
	res *services.DataResolver
}

// NewAvatarRenderer creates a new avatar renderer.
func NewAvatarRenderer(res *services.DataResolver) *AvatarRenderer {
	return &AvatarRenderer{res: res}
}

// Render produces one positioned avatar fragment.
func (ar *AvatarRenderer) Render(el *cards.LayoutElement) string {
	radiusToken := el.BorderRadius
	if radiusToken == "" {
		radiusToken = "full"
	}
	radius := BorderRadiusPx(radiusToken)

	if url := ar.res.AvatarURL(); url != "" {
		alt := ar.res.FullName()
		if alt == "" {
			alt = ar.res.Initials()
		}
		style := joinStyles(
			positionStyle(el),
			fmt.Sprintf("border-radius: %dpx", radius),
			"object-fit: cover",
		)

		var html strings.Builder
		err := avatarImgTmpl.Execute(&html, avatarImgData{Src: url, Alt: alt, Style: template.CSS(style)})
		if err != nil {
			log.Printf("ERROR: Failed to execute avatar template for element %s: %v", el.ID, err)
			return ""
		}
		return html.String()
	}

	// Initials circle sized proportionally to element height.
	background := services.SafeCSSColor(el.BackgroundColor, ar.res.Scheme().Primary)
	fontSize := el.Height * 2 / 5

	style := joinStyles(
		positionStyle(el),
		fmt.Sprintf("border-radius: %dpx", radius),
		"background-color: "+background,
		"color: #FFFFFF",
		fmt.Sprintf("font-size: %dpx", fontSize),
		"font-weight: 600",
		"display: flex",
		"align-items: center",
		"justify-content: center",
	)
	return fmt.Sprintf(`<div style="%s">%s</div>`, escape(style), escape(ar.res.Initials()))
}
