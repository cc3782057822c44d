package templates

import (
	"regexp"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
)

// inertHref is returned when no contact value resolves at all. The link
// is simply non-functional; this is not an error condition.
const inertHref = "#"

var protocolPrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// ResolveAction resolves an element's configured data source and action
// kind into a clickable URI. Value lookup and scheme wrapping are
// independent steps.
func ResolveAction(el *cards.LayoutElement, req *cards.RenderRequest) string {
	value := lookupActionValue(el, req)
	if value == "" {
		return inertHref
	}
	return wrapActionScheme(el.ActionType, value)
}

// lookupActionValue selects the one contact value the element's
// actionSource tag names. When the tag is absent, the value is derived
// from the actionType instead; the two paths overlap deliberately so a
// record missing its source tag still resolves.
func lookupActionValue(el *cards.LayoutElement, req *cards.RenderRequest) string {
	if el.ActionSource == "" {
		return lookupByActionType(el, req)
	}

	switch el.ActionSource {
	case "phone":
		return firstOf(businessPhone(req), profilePhone(req))
	case "email":
		return profileEmail(req)
	case "website":
		return businessWebsite(req)
	case "custom":
		return el.CustomValue
	default:
		if url := req.SocialProfile.URLFor(el.ActionSource); url != "" {
			return url
		}
		return el.CustomValue
	}
}

// lookupByActionType derives a contact value from the action kind when
// no explicit source tag is configured.
func lookupByActionType(el *cards.LayoutElement, req *cards.RenderRequest) string {
	switch el.ActionType {
	case "call", "sms":
		return firstOf(businessPhone(req), profilePhone(req))
	case "email":
		return profileEmail(req)
	case "website":
		return businessWebsite(req)
	default:
		return el.CustomValue
	}
}

// wrapActionScheme wraps a resolved value in the URI scheme its action
// kind implies. Values that already carry a protocol prefix pass
// through unchanged; anything else becomes an https URL.
func wrapActionScheme(actionType, value string) string {
	switch actionType {
	case "call":
		return "tel:" + value
	case "sms":
		return "sms:" + value
	case "email":
		return "mailto:" + value
	default:
		if protocolPrefix.MatchString(value) {
			return value
		}
		return "https://" + value
	}
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func businessPhone(req *cards.RenderRequest) string {
	if req.Business == nil {
		return ""
	}
	return req.Business.Phone
}

func profilePhone(req *cards.RenderRequest) string {
	if req.Profile == nil {
		return ""
	}
	return req.Profile.Phone
}

func profileEmail(req *cards.RenderRequest) string {
	if req.Profile == nil {
		return ""
	}
	return req.Profile.Email
}

func businessWebsite(req *cards.RenderRequest) string {
	if req.Business == nil {
		return ""
	}
	return req.Business.Website
}
