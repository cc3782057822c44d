// Package templates provides element rendering for the card compositor
package templates

import (
	"sort"
	"strings"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"

	elements "github.com/cardpress/cardpress-go/internal/presentation/templates/elements"
)

// ElementRenderer dispatches on element kind and produces one
// positioned markup fragment per visible element. The dispatch is
// total: an unrecognized kind contributes the empty string and never
// aborts sibling rendering.
type ElementRenderer struct {
	res        *services.DataResolver
	avatar     *elements.AvatarRenderer
	textBlock  *elements.TextBlockRenderer
	bio        *elements.BioRenderer
	image      *elements.ImageRenderer
	colorBlock *elements.ColorBlockRenderer
	button     *elements.ButtonRenderer
	socialIcon *elements.SocialIconRenderer
	divider    *elements.DividerRenderer
	freeText   *elements.FreeTextRenderer
}

// NewElementRenderer creates an element renderer over one resolved
// render request.
func NewElementRenderer(res *services.DataResolver) *ElementRenderer {
	return &ElementRenderer{
		res:        res,
		avatar:     elements.NewAvatarRenderer(res),
		textBlock:  elements.NewTextBlockRenderer(res),
		bio:        elements.NewBioRenderer(res),
		image:      elements.NewImageRenderer(res),
		colorBlock: elements.NewColorBlockRenderer(res),
		button:     elements.NewButtonRenderer(res),
		socialIcon: elements.NewSocialIconRenderer(res),
		divider:    elements.NewDividerRenderer(res),
		freeText:   elements.NewFreeTextRenderer(res),
	}
}

// RenderElement renders one element by kind.
func (er *ElementRenderer) RenderElement(el *cards.LayoutElement) string {
	switch el.Kind {
	case cards.KindAvatar:
		return er.avatar.Render(el)
	case cards.KindName, cards.KindTitle, cards.KindCompany:
		return er.textBlock.Render(el)
	case cards.KindBio:
		return er.bio.Render(el)
	case cards.KindImage:
		return er.image.Render(el)
	case cards.KindColorBlock:
		return er.colorBlock.Render(el)
	case cards.KindActionButton, cards.KindButtonPrimary, cards.KindButtonSecondary:
		return er.button.Render(el)
	case cards.KindSocialIcon:
		return er.socialIcon.Render(el)
	case cards.KindDivider:
		return er.divider.Render(el)
	case cards.KindText:
		return er.freeText.Render(el)
	default:
		return ""
	}
}

// RenderAll renders the visible elements in ascending zIndex order,
// preserving input order for equal zIndex, and concatenates the
// fragments.
func (er *ElementRenderer) RenderAll(els []cards.LayoutElement) string {
	var html strings.Builder
	for _, el := range sortedVisible(els) {
		html.WriteString(er.RenderElement(el))
	}
	return html.String()
}

// sortedVisible filters out invisible elements and stable-sorts the
// remainder by zIndex.
func sortedVisible(els []cards.LayoutElement) []*cards.LayoutElement {
	visible := make([]*cards.LayoutElement, 0, len(els))
	for i := range els {
		if els[i].Visible() {
			visible = append(visible, &els[i])
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].ZIndex < visible[j].ZIndex
	})
	return visible
}

// Render is the full pipeline for one request: resolve, render every
// visible element, assemble the document. It is a pure function of its
// input; identical requests produce byte-identical documents.
func Render(req *cards.RenderRequest, cfg services.ResolverConfig) string {
	res := services.NewDataResolver(req, cfg)
	renderer := NewElementRenderer(res)

	var els []cards.LayoutElement
	if req != nil && req.Template != nil && req.Template.Layout != nil {
		els = req.Template.Layout.Elements
	}

	return AssembleDocument(res, renderer.RenderAll(els))
}
