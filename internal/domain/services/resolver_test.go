package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
)

func testResolverConfig() ResolverConfig {
	return ResolverConfig{
		CanonicalBaseURL:        "https://card.example.com",
		PlaceholderImageBaseURL: "https://placeholder.example.com/api/",
		DefaultFaviconPath:      "/favicon.svg",
		DefaultPlaceholderColor: "#3B82F6",
	}
}

func newResolver(req *cards.RenderRequest) *DataResolver {
	return NewDataResolver(req, testResolverConfig())
}

func TestFullName(t *testing.T) {
	r := newResolver(&cards.RenderRequest{
		Profile: &cards.Profile{FirstName: "Ada", LastName: "Lovelace"},
	})
	assert.Equal(t, "Ada Lovelace", r.FullName())

	r = newResolver(&cards.RenderRequest{Profile: &cards.Profile{FirstName: "Ada"}})
	assert.Equal(t, "Ada", r.FullName())

	r = newResolver(&cards.RenderRequest{})
	assert.Equal(t, "", r.FullName())
}

func TestInitials(t *testing.T) {
	r := newResolver(&cards.RenderRequest{
		Profile: &cards.Profile{FirstName: "ada", LastName: "lovelace"},
	})
	assert.Equal(t, "AL", r.Initials())

	r = newResolver(&cards.RenderRequest{Profile: &cards.Profile{LastName: "lovelace"}})
	assert.Equal(t, "L", r.Initials())

	r = newResolver(nil)
	assert.Equal(t, "U", r.Initials())
}

func TestDisplayTitleChain(t *testing.T) {
	r := newResolver(&cards.RenderRequest{
		Card:    &cards.Card{CustomTitle: "Founder"},
		Profile: &cards.Profile{JobTitle: "Engineer"},
	})
	assert.Equal(t, "Founder", r.DisplayTitle())

	r = newResolver(&cards.RenderRequest{Profile: &cards.Profile{JobTitle: "Engineer"}})
	assert.Equal(t, "Engineer", r.DisplayTitle())

	r = newResolver(&cards.RenderRequest{})
	assert.Equal(t, "", r.DisplayTitle())
}

func TestOGTitleChain(t *testing.T) {
	tests := []struct {
		name string
		req  *cards.RenderRequest
		want string
	}{
		{
			name: "explicit og title wins",
			req: &cards.RenderRequest{
				Card:    &cards.Card{OGTitle: "Custom OG"},
				Profile: &cards.Profile{FirstName: "Ada", JobTitle: "Engineer"},
			},
			want: "Custom OG",
		},
		{
			name: "name dash title",
			req: &cards.RenderRequest{
				Profile:  &cards.Profile{FirstName: "Ada", LastName: "Lovelace", JobTitle: "Engineer"},
				Business: &cards.Business{Name: "Analytical Engines"},
			},
			want: "Ada Lovelace - Engineer",
		},
		{
			name: "name at company when no title",
			req: &cards.RenderRequest{
				Profile:  &cards.Profile{FirstName: "Ada", LastName: "Lovelace"},
				Business: &cards.Business{Name: "Analytical Engines"},
			},
			want: "Ada Lovelace at Analytical Engines",
		},
		{
			name: "name alone",
			req:  &cards.RenderRequest{Profile: &cards.Profile{FirstName: "Ada"}},
			want: "Ada",
		},
		{
			name: "company alone",
			req:  &cards.RenderRequest{Business: &cards.Business{Name: "Analytical Engines"}},
			want: "Analytical Engines",
		},
		{
			name: "literal fallback",
			req:  &cards.RenderRequest{},
			want: "Contact Card",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newResolver(tt.req).OGTitle())
		})
	}
}

func TestOGDescriptionChain(t *testing.T) {
	tests := []struct {
		name string
		req  *cards.RenderRequest
		want string
	}{
		{
			name: "custom bio before derived",
			req: &cards.RenderRequest{
				Card:    &cards.Card{CustomBio: "Hand-written bio"},
				Profile: &cards.Profile{FirstName: "Ada", JobTitle: "Engineer"},
			},
			want: "Hand-written bio",
		},
		{
			name: "name title company",
			req: &cards.RenderRequest{
				Profile:  &cards.Profile{FirstName: "Ada", JobTitle: "Engineer"},
				Business: &cards.Business{Name: "Analytical Engines"},
			},
			want: "Ada, Engineer at Analytical Engines",
		},
		{
			name: "name title",
			req: &cards.RenderRequest{
				Profile: &cards.Profile{FirstName: "Ada", JobTitle: "Engineer"},
			},
			want: "Ada, Engineer",
		},
		{
			name: "connect with name at company",
			req: &cards.RenderRequest{
				Profile:  &cards.Profile{FirstName: "Ada"},
				Business: &cards.Business{Name: "Analytical Engines"},
			},
			want: "Connect with Ada at Analytical Engines",
		},
		{
			name: "connect with name",
			req:  &cards.RenderRequest{Profile: &cards.Profile{FirstName: "Ada"}},
			want: "Connect with Ada",
		},
		{
			name: "contact card for company",
			req:  &cards.RenderRequest{Business: &cards.Business{Name: "Analytical Engines"}},
			want: "Contact card for Analytical Engines",
		},
		{
			name: "literal fallback",
			req:  &cards.RenderRequest{},
			want: "View contact information",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newResolver(tt.req).OGDescription())
		})
	}
}

func TestOGImageFallback(t *testing.T) {
	// Only the avatar URL is set; every higher-priority field is absent.
	r := newResolver(&cards.RenderRequest{
		Profile: &cards.Profile{AvatarURL: "https://cdn.example.com/ada.jpg"},
	})
	assert.Equal(t, "https://cdn.example.com/ada.jpg", r.OGImage())

	// Custom field outranks the avatar.
	r = newResolver(&cards.RenderRequest{
		Card:    &cards.Card{CustomFields: map[string]string{"profile_photo_url": "https://cdn.example.com/custom.jpg"}},
		Profile: &cards.Profile{AvatarURL: "https://cdn.example.com/ada.jpg"},
	})
	assert.Equal(t, "https://cdn.example.com/custom.jpg", r.OGImage())

	// Nothing set: generated placeholder with stripped hex color and initials.
	r = newResolver(&cards.RenderRequest{
		Profile:  &cards.Profile{FirstName: "Ada", LastName: "Lovelace"},
		Business: &cards.Business{PrimaryColor: "#FF5733"},
	})
	got := r.OGImage()
	assert.Contains(t, got, "https://placeholder.example.com/api/")
	assert.Contains(t, got, "background=FF5733")
	assert.Contains(t, got, "name=AL")
	assert.NotContains(t, got, "#")

	// Default blue when the business has no primary color.
	r = newResolver(&cards.RenderRequest{})
	assert.Contains(t, r.OGImage(), "background=3B82F6")
	assert.Contains(t, r.OGImage(), "name=U")
}

func TestFaviconChain(t *testing.T) {
	r := newResolver(&cards.RenderRequest{
		Business: &cards.Business{LogoIconURL: "https://cdn.example.com/icon.png", LogoURL: "https://cdn.example.com/logo.png"},
	})
	assert.Equal(t, "https://cdn.example.com/icon.png", r.Favicon())

	r = newResolver(&cards.RenderRequest{
		Business: &cards.Business{LogoURL: "https://cdn.example.com/logo.png"},
	})
	assert.Equal(t, "https://cdn.example.com/logo.png", r.Favicon())

	r = newResolver(&cards.RenderRequest{})
	assert.Equal(t, "/favicon.svg", r.Favicon())
}

func TestCanonicalURL(t *testing.T) {
	r := newResolver(&cards.RenderRequest{Card: &cards.Card{PublicSlug: "ada-lovelace"}})
	assert.Equal(t, "https://card.example.com/ada-lovelace?embed=true", r.CanonicalURL())

	r = newResolver(&cards.RenderRequest{Card: &cards.Card{Token: "tok123"}})
	assert.Equal(t, "https://card.example.com/?token=tok123&embed=true", r.CanonicalURL())

	r = newResolver(&cards.RenderRequest{})
	assert.Equal(t, "https://card.example.com/?embed=true", r.CanonicalURL())
}

func TestSchemeDefaults(t *testing.T) {
	r := newResolver(&cards.RenderRequest{})
	scheme := r.Scheme()
	assert.Equal(t, "#3B82F6", scheme.Primary)
	assert.Equal(t, "#1E40AF", scheme.Secondary)
	assert.Equal(t, "#FFFFFF", scheme.Background)
	assert.Equal(t, "#1F2937", scheme.Text)

	r = newResolver(&cards.RenderRequest{
		Template: &cards.CardTemplate{ColorScheme: &cards.ColorScheme{Primary: "#111111"}},
	})
	scheme = r.Scheme()
	assert.Equal(t, "#111111", scheme.Primary)
	assert.Equal(t, "#1E40AF", scheme.Secondary)
}

func TestSchemeReplacesMalformedMembers(t *testing.T) {
	r := newResolver(&cards.RenderRequest{
		Template: &cards.CardTemplate{ColorScheme: &cards.ColorScheme{
			Primary: `red"><script>alert(1)</script>`,
			Text:    "#111; position: fixed",
		}},
	})
	scheme := r.Scheme()
	assert.Equal(t, "#3B82F6", scheme.Primary)
	assert.Equal(t, "#1F2937", scheme.Text)
}

func TestBackgroundStyle(t *testing.T) {
	r := newResolver(&cards.RenderRequest{
		Template: &cards.CardTemplate{BackgroundType: "image", BackgroundURL: "https://cdn.example.com/bg.jpg"},
	})
	assert.Equal(t, "background: url('https://cdn.example.com/bg.jpg') center / cover no-repeat", r.BackgroundStyle())

	r = newResolver(&cards.RenderRequest{
		Template: &cards.CardTemplate{BackgroundType: "gradient"},
	})
	assert.Equal(t, "background: linear-gradient(135deg, #3B82F6, #1E40AF)", r.BackgroundStyle())

	r = newResolver(&cards.RenderRequest{
		Template: &cards.CardTemplate{Background: "#FAFAFA"},
	})
	assert.Equal(t, "background: #FAFAFA", r.BackgroundStyle())

	r = newResolver(&cards.RenderRequest{})
	assert.Equal(t, "background-color: #FFFFFF", r.BackgroundStyle())
}

func TestBackgroundStyleRejectsUnsafeValues(t *testing.T) {
	// Non-http(s) scheme is blocked.
	r := newResolver(&cards.RenderRequest{
		Template: &cards.CardTemplate{BackgroundType: "image", BackgroundURL: "javascript:alert(1)"},
	})
	assert.Equal(t, "background-color: #FFFFFF", r.BackgroundStyle())

	// Quotes or parens would terminate the url('...') declaration.
	r = newResolver(&cards.RenderRequest{
		Template: &cards.CardTemplate{BackgroundType: "image", BackgroundURL: "https://cdn.example.com/a.jpg') no-repeat; x: url('"},
	})
	assert.Equal(t, "background-color: #FFFFFF", r.BackgroundStyle())

	// A literal declaration cannot carry markup.
	r = newResolver(&cards.RenderRequest{
		Template: &cards.CardTemplate{Background: "red</style><script>alert(1)</script>"},
	})
	assert.Equal(t, "background-color: #FFFFFF", r.BackgroundStyle())
}

func TestInterpolateSubstitutesResolvedFields(t *testing.T) {
	r := newResolver(&cards.RenderRequest{
		Profile:  &cards.Profile{FirstName: "Ada", LastName: "Lovelace", JobTitle: "Engineer", Email: "ada@example.com"},
		Business: &cards.Business{Name: "Analytical Engines", Phone: "555-1234", Website: "https://example.com"},
	})

	assert.Equal(t, "Ada Lovelace, Engineer at Analytical Engines",
		r.Interpolate("{{name}}, {{title}} at {{company}}"))
	assert.Equal(t, "Call 555-1234 or write ada@example.com",
		r.Interpolate("Call {{phone}} or write {{email}}"))
	assert.Equal(t, "Ada and", r.Interpolate("{{first_name}} and {{nonexistent}}"))
}
