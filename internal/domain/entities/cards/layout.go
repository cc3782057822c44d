package cards

// ElementKind tags a LayoutElement with its renderer variant. Unknown
// kinds decode fine and render to an empty fragment.
type ElementKind string

const (
	KindAvatar          ElementKind = "avatar"
	KindName            ElementKind = "name"
	KindTitle           ElementKind = "title"
	KindCompany         ElementKind = "company"
	KindBio             ElementKind = "bio"
	KindImage           ElementKind = "image"
	KindColorBlock      ElementKind = "color_block"
	KindActionButton    ElementKind = "action_button"
	KindButtonPrimary   ElementKind = "button_primary"
	KindButtonSecondary ElementKind = "button_secondary"
	KindSocialIcon      ElementKind = "social_icon"
	KindDivider         ElementKind = "divider"
	KindText            ElementKind = "text"
	KindUnknown         ElementKind = "unknown"
)

// LayoutElement is one positioned, typed visual unit within a layout.
// The kind tag selects the renderer variant; the optional style fields
// only apply to the kinds that use them, matching the JSON shape the
// remote card records arrive in.
type LayoutElement struct {
	ID     string      `json:"id"`
	Kind   ElementKind `json:"type"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	ZIndex int         `json:"zIndex,omitempty"`

	// Visibility defaults to visible when the field is absent.
	IsVisible *bool `json:"isVisible,omitempty"`

	// Style fields, each used by a subset of kinds.
	BorderRadius    string `json:"borderRadius,omitempty"`
	BorderWidth     int    `json:"borderWidth,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`
	TextAlign       string `json:"textAlign,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Opacity         *int   `json:"opacity,omitempty"` // 0-100
	IconName        string `json:"icon,omitempty"`
	IconSize        string `json:"iconSize,omitempty"`

	// Action binding for button and social icon kinds.
	ActionSource string `json:"actionSource,omitempty"`
	ActionType   string `json:"actionType,omitempty"`

	// Free-form bindings.
	CustomValue string `json:"customValue,omitempty"`
	Label       string `json:"label,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Visible reports whether the element should reach the renderer.
func (e *LayoutElement) Visible() bool {
	return e.IsVisible == nil || *e.IsVisible
}

// OpacityPercent returns the element opacity clamped to 0-100, with 100
// as the default when the field is absent.
func (e *LayoutElement) OpacityPercent() int {
	if e.Opacity == nil {
		return 100
	}
	v := *e.Opacity
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
