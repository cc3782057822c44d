package services

import (
	"net/url"
	"regexp"
	"strings"
)

// cssColorPattern matches the color token forms card records may carry:
// hex notation, the rgb()/hsl() functional forms and plain named colors.
// Anything else never reaches a style attribute.
var cssColorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(?:rgb|rgba|hsl|hsla)\([0-9.,%\s/]*\))$`)

// SafeCSSColor returns value when it is a well-formed CSS color token
// and fallback otherwise. Color fields arrive from the remote card
// record and are never emitted as-is.
func SafeCSSColor(value, fallback string) string {
	value = strings.TrimSpace(value)
	if cssColorPattern.MatchString(value) {
		return value
	}
	return fallback
}

// safeBackgroundURL validates a background image URL before it is
// embedded in a url('...') declaration. Only http(s) and relative URLs
// pass; characters that could terminate the declaration are rejected.
func safeBackgroundURL(rawURL string) string {
	if strings.ContainsAny(rawURL, `'"()<>\`) {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "" && scheme != "http" && scheme != "https" {
		return ""
	}
	return rawURL
}

// safeBackgroundLiteral admits a raw background declaration value only
// when it cannot escape the enclosing style rule.
func safeBackgroundLiteral(value string) string {
	if strings.ContainsAny(value, `<>"'{}&`) {
		return ""
	}
	return strings.TrimSpace(value)
}
