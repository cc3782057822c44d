// Package services provides pure data resolution over a RenderRequest
package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	"github.com/cardpress/cardpress-go/pkg/config"
)

// ResolverConfig carries the fixed external bases the resolver builds
// URLs from. Production values come from pkg/config; tests inject their
// own.
type ResolverConfig struct {
	CanonicalBaseURL        string
	PlaceholderImageBaseURL string
	DefaultFaviconPath      string
	DefaultPlaceholderColor string
}

// DefaultResolverConfig returns the process-wide resolver configuration.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		CanonicalBaseURL:        config.CanonicalBaseURL,
		PlaceholderImageBaseURL: config.PlaceholderImageBaseURL,
		DefaultFaviconPath:      config.DefaultFaviconPath,
		DefaultPlaceholderColor: config.DefaultPlaceholderColor,
	}
}

// DataResolver computes every derived display value other components
// need, as pure functions of one RenderRequest. Every chain selects the
// first non-empty candidate in order and falls back to a documented
// default; no method ever returns an error.
type DataResolver struct {
	req *cards.RenderRequest
	cfg ResolverConfig
}

// NewDataResolver creates a resolver for one render request.
func NewDataResolver(req *cards.RenderRequest, cfg ResolverConfig) *DataResolver {
	if req == nil {
		req = &cards.RenderRequest{}
	}
	return &DataResolver{req: req, cfg: cfg}
}

// firstNonEmpty returns the first candidate producing a non-blank value,
// or the fallback when none do. Candidates are evaluated lazily so
// chains stay cheap and independently testable.
func firstNonEmpty(fallback string, candidates ...func() string) string {
	for _, candidate := range candidates {
		if v := strings.TrimSpace(candidate()); v != "" {
			return v
		}
	}
	return fallback
}

func (r *DataResolver) card() *cards.Card {
	if r.req.Card == nil {
		return &cards.Card{}
	}
	return r.req.Card
}

func (r *DataResolver) profile() *cards.Profile {
	if r.req.Profile == nil {
		return &cards.Profile{}
	}
	return r.req.Profile
}

func (r *DataResolver) business() *cards.Business {
	if r.req.Business == nil {
		return &cards.Business{}
	}
	return r.req.Business
}

func (r *DataResolver) template() *cards.CardTemplate {
	if r.req.Template == nil {
		return &cards.CardTemplate{}
	}
	return r.req.Template
}

// Request exposes the underlying render request to collaborating
// renderers.
func (r *DataResolver) Request() *cards.RenderRequest {
	return r.req
}

// FullName joins first and last name, trimmed; empty when neither is
// present.
func (r *DataResolver) FullName() string {
	p := r.profile()
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// Initials returns the upper-cased first letters of first and last
// name, or "U" when both are absent.
func (r *DataResolver) Initials() string {
	p := r.profile()
	var b strings.Builder
	if first := []rune(strings.TrimSpace(p.FirstName)); len(first) > 0 {
		b.WriteRune(first[0])
	}
	if last := []rune(strings.TrimSpace(p.LastName)); len(last) > 0 {
		b.WriteRune(last[0])
	}
	if b.Len() == 0 {
		return "U"
	}
	return strings.ToUpper(b.String())
}

// DisplayTitle resolves the job title shown on the card.
func (r *DataResolver) DisplayTitle() string {
	return firstNonEmpty("",
		func() string { return r.card().CustomTitle },
		func() string { return r.profile().JobTitle },
	)
}

// CompanyName resolves the organization name shown on the card.
func (r *DataResolver) CompanyName() string {
	return firstNonEmpty("",
		func() string { return r.business().Name },
	)
}

// OGTitle resolves the social-preview title.
func (r *DataResolver) OGTitle() string {
	name := r.FullName()
	title := r.DisplayTitle()
	company := r.CompanyName()

	return firstNonEmpty("Contact Card",
		func() string { return r.card().OGTitle },
		func() string {
			if name != "" && title != "" {
				return name + " - " + title
			}
			return ""
		},
		func() string {
			if name != "" && company != "" {
				return name + " at " + company
			}
			return ""
		},
		func() string { return name },
		func() string { return company },
	)
}

// OGDescription resolves the social-preview description.
func (r *DataResolver) OGDescription() string {
	name := r.FullName()
	title := r.DisplayTitle()
	company := r.CompanyName()

	return firstNonEmpty("View contact information",
		func() string { return r.card().OGDescription },
		func() string { return r.card().CustomBio },
		func() string {
			if name != "" && title != "" && company != "" {
				return fmt.Sprintf("%s, %s at %s", name, title, company)
			}
			return ""
		},
		func() string {
			if name != "" && title != "" {
				return fmt.Sprintf("%s, %s", name, title)
			}
			return ""
		},
		func() string {
			if name != "" && company != "" {
				return fmt.Sprintf("Connect with %s at %s", name, company)
			}
			return ""
		},
		func() string {
			if name != "" {
				return "Connect with " + name
			}
			return ""
		},
		func() string {
			if company != "" {
				return "Contact card for " + company
			}
			return ""
		},
	)
}

// Bio resolves the free-form biography text shown by bio elements.
func (r *DataResolver) Bio() string {
	return firstNonEmpty("",
		func() string { return r.card().CustomBio },
	)
}

// OGImage resolves the social-preview image URL, falling back to a
// generated initials-placeholder URL when no stored image resolves.
func (r *DataResolver) OGImage() string {
	return firstNonEmpty(r.PlaceholderImageURL(),
		func() string { return r.card().OGImageURL },
		func() string { return r.card().CustomFields["profile_photo_url"] },
		func() string { return r.profile().AvatarURL },
		func() string { return r.business().LogoFullURL },
		func() string { return r.business().LogoURL },
	)
}

// AvatarURL resolves the image shown by avatar elements. Unlike OGImage
// it never falls back to the placeholder service; the avatar renderer
// draws an initials circle instead.
func (r *DataResolver) AvatarURL() string {
	return firstNonEmpty("",
		func() string { return r.card().CustomImage },
		func() string { return r.card().CustomFields["profile_photo_url"] },
		func() string { return r.profile().AvatarURL },
	)
}

// PlaceholderImageURL constructs (never fetches) an external
// initials-placeholder image URL from the resolved initials and the
// business primary color, hash stripped.
func (r *DataResolver) PlaceholderImageURL() string {
	color := strings.TrimSpace(r.business().PrimaryColor)
	if color == "" {
		color = r.cfg.DefaultPlaceholderColor
	}
	return fmt.Sprintf("%s?name=%s&background=%s&size=256",
		r.cfg.PlaceholderImageBaseURL,
		url.QueryEscape(r.Initials()),
		strings.TrimPrefix(color, "#"),
	)
}

// TemplateFields returns the substitution values available to
// placeholder-bearing custom text: resolved identity and contact data
// keyed by placeholder name.
func (r *DataResolver) TemplateFields() map[string]string {
	return map[string]string{
		"name":       r.FullName(),
		"first_name": strings.TrimSpace(r.profile().FirstName),
		"last_name":  strings.TrimSpace(r.profile().LastName),
		"title":      r.DisplayTitle(),
		"company":    r.CompanyName(),
		"email": firstNonEmpty("",
			func() string { return r.profile().Email },
			func() string { return r.business().Email },
		),
		"phone": firstNonEmpty("",
			func() string { return r.business().Phone },
			func() string { return r.profile().Phone },
		),
		"website": firstNonEmpty("",
			func() string { return r.business().Website },
		),
	}
}

// Interpolate substitutes {{field}} placeholders in custom text with
// resolved card data. Unknown placeholders collapse to empty.
func (r *DataResolver) Interpolate(s string) string {
	return ApplyTemplate(s, r.TemplateFields())
}

// Favicon resolves the document favicon URL.
func (r *DataResolver) Favicon() string {
	return firstNonEmpty(r.cfg.DefaultFaviconPath,
		func() string { return r.business().LogoIconURL },
		func() string { return r.business().LogoURL },
	)
}

// CanonicalURL builds the card's live URL from the fixed external base
// plus slug or token; the embed flag is always appended.
func (r *DataResolver) CanonicalURL() string {
	base := strings.TrimRight(r.cfg.CanonicalBaseURL, "/")
	c := r.card()
	if c.PublicSlug != "" {
		return fmt.Sprintf("%s/%s?embed=true", base, url.PathEscape(c.PublicSlug))
	}
	if c.Token != "" {
		return fmt.Sprintf("%s/?token=%s&embed=true", base, url.QueryEscape(c.Token))
	}
	return base + "/?embed=true"
}

// Scheme resolves the color scheme, filling any blank or malformed
// member from the built-in default so every consumer sees four usable
// color tokens.
func (r *DataResolver) Scheme() cards.ColorScheme {
	def := cards.DefaultColorScheme()
	tpl := r.template().ColorScheme
	if tpl == nil {
		return def
	}
	return cards.ColorScheme{
		Primary:    SafeCSSColor(tpl.Primary, def.Primary),
		Secondary:  SafeCSSColor(tpl.Secondary, def.Secondary),
		Background: SafeCSSColor(tpl.Background, def.Background),
		Text:       SafeCSSColor(tpl.Text, def.Text),
	}
}

// BackgroundStyle resolves the canvas background CSS declaration.
// Image URLs and literal declarations are validated before emission; a
// value that fails validation degrades to the scheme background color.
func (r *DataResolver) BackgroundStyle() string {
	tpl := r.template()
	scheme := r.Scheme()

	switch {
	case tpl.BackgroundType == "image" && tpl.BackgroundURL != "":
		if u := safeBackgroundURL(tpl.BackgroundURL); u != "" {
			return fmt.Sprintf("background: url('%s') center / cover no-repeat", u)
		}
		return "background-color: " + scheme.Background
	case tpl.BackgroundType == "gradient":
		return fmt.Sprintf("background: linear-gradient(135deg, %s, %s)", scheme.Primary, scheme.Secondary)
	case tpl.Background != "":
		if v := safeBackgroundLiteral(tpl.Background); v != "" {
			return "background: " + v
		}
		return "background-color: " + scheme.Background
	default:
		return "background-color: " + scheme.Background
	}
}
