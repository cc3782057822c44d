// Package cards provides domain entities for card rendering operations
package cards

// RenderRequest bundles everything needed to render one card. Every
// sub-record is optional; the resolver degrades to documented defaults
// when a field is absent. The request is immutable for the duration of
// a render call.
type RenderRequest struct {
	Card          *Card          `json:"card,omitempty"`
	Profile       *Profile       `json:"profile,omitempty"`
	Business      *Business      `json:"business,omitempty"`
	Template      *CardTemplate  `json:"template,omitempty"`
	SocialProfile *SocialProfile `json:"socialProfile,omitempty"`
}

// Card holds per-instance overrides for a single shareable card.
type Card struct {
	ID            string            `json:"id,omitempty"`
	PublicSlug    string            `json:"publicSlug,omitempty"`
	Token         string            `json:"token,omitempty"`
	CustomTitle   string            `json:"customTitle,omitempty"`
	CustomBio     string            `json:"customBio,omitempty"`
	CustomImage   string            `json:"customImage,omitempty"`
	OGTitle       string            `json:"ogTitle,omitempty"`
	OGDescription string            `json:"ogDescription,omitempty"`
	OGImageURL    string            `json:"ogImageUrl,omitempty"`
	CustomFields  map[string]string `json:"customFields,omitempty"`
}

// Profile holds person identity data.
type Profile struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Business holds organization identity data.
type Business struct {
	Name         string `json:"name,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	LogoFullURL  string `json:"logoFullUrl,omitempty"`
	LogoIconURL  string `json:"logoIconUrl,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Website      string `json:"website,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
}

// CardTemplate is the reusable visual design a card is rendered with.
type CardTemplate struct {
	ID             string        `json:"id,omitempty"`
	Name           string        `json:"name,omitempty"`
	Layout         *LayoutConfig `json:"layout,omitempty"`
	ColorScheme    *ColorScheme  `json:"colorScheme,omitempty"`
	BackgroundType string        `json:"backgroundType,omitempty"` // "image", "gradient" or empty
	BackgroundURL  string        `json:"backgroundUrl,omitempty"`
	Background     string        `json:"background,omitempty"` // literal CSS value
}

// LayoutConfig holds the element list plus the canvas dimensions the
// element geometry is defined within.
type LayoutConfig struct {
	Width    int             `json:"width,omitempty"`
	Height   int             `json:"height,omitempty"`
	Elements []LayoutElement `json:"elements,omitempty"`
}

// SocialProfile maps platform names to external profile URLs.
type SocialProfile struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	GitHub    string `json:"github,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// URLFor returns the profile URL for a platform name, or "" when the
// platform is unknown or unset.
func (sp *SocialProfile) URLFor(platform string) string {
	if sp == nil {
		return ""
	}
	switch platform {
	case "linkedin":
		return sp.LinkedIn
	case "twitter", "x":
		return sp.Twitter
	case "instagram":
		return sp.Instagram
	case "facebook":
		return sp.Facebook
	case "github":
		return sp.GitHub
	case "youtube":
		return sp.YouTube
	case "tiktok":
		return sp.TikTok
	case "whatsapp":
		return sp.WhatsApp
	default:
		return ""
	}
}

// ColorScheme carries the four named colors every render resolves.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// DefaultColorScheme returns the built-in scheme used when the template
// supplies none.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:    "#3B82F6",
		Secondary:  "#1E40AF",
		Background: "#FFFFFF",
		Text:       "#1F2937",
	}
}
