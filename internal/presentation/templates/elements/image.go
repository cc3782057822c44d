package templates

import (
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

var imageTmpl = template.Must(template.New("image").Parse(
	`<img src="{{.Src}}" alt="{{.Alt}}" style="{{.Style}}">`,
))

type imageData struct {
	Src   string
	Alt   string
	Style template.CSS
}

// ImageRenderer renders bound image elements. Elements whose id follows
// the company-logo pattern prefer the business logo variants over the
// element's bound URL. When no URL resolves the element is silently
// omitted.
type ImageRenderer struct {
	res *services.DataResolver
}

// NewImageRenderer creates a new image renderer.
func NewImageRenderer(res *services.DataResolver) *ImageRenderer {
	return &ImageRenderer{res: res}
}

// Render produces one positioned image fragment, or "" when no image
// URL resolves.
func (ir *ImageRenderer) Render(el *cards.LayoutElement) string {
	url := ir.resolveURL(el)
	if url == "" {
		return ""
	}

	style := joinStyles(
		positionStyle(el),
		fmt.Sprintf("border-radius: %dpx", BorderRadiusPx(el.BorderRadius)),
		"object-fit: cover",
	) + opacityStyle(el)

	var html strings.Builder
	err := imageTmpl.Execute(&html, imageData{Src: url, Alt: el.Label, Style: template.CSS(style)})
	if err != nil {
		log.Printf("ERROR: Failed to execute image template for element %s: %v", el.ID, err)
		return ""
	}
	return html.String()
}

func (ir *ImageRenderer) resolveURL(el *cards.LayoutElement) string {
	if isCompanyLogoElement(el.ID) {
		req := ir.res.Request()
		if req.Business != nil {
			if req.Business.LogoFullURL != "" {
				return req.Business.LogoFullURL
			}
			if req.Business.LogoIconURL != "" {
				return req.Business.LogoIconURL
			}
		}
	}
	return el.ImageURL
}

func isCompanyLogoElement(id string) bool {
	lower := strings.ToLower(id)
	return strings.Contains(lower, "company") && strings.Contains(lower, "logo")
}
