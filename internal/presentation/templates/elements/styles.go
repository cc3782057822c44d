package templates

import (
	"fmt"
	"strconv"
	"strings"
)

// Style token tables. Process-wide and read-only; every lookup is total,
// unrecognized tokens map to the md default.

var borderRadiusPx = map[string]int{
	"none": 0,
	"sm":   4,
	"md":   8,
	"lg":   12,
	"xl":   16,
	"full": 9999,
}

// BorderRadiusPx maps a radius token to concrete pixels; unrecognized
// tokens map to 8.
func BorderRadiusPx(token string) int {
	if px, ok := borderRadiusPx[token]; ok {
		return px
	}
	return 8
}

var fontSizePx = map[string]string{
	"xs":  "12px",
	"sm":  "14px",
	"md":  "16px",
	"lg":  "18px",
	"xl":  "20px",
	"2xl": "24px",
	"3xl": "32px",
}

// FontSizeCSS maps a size token to a CSS pixel value. Tokens already
// carrying a pixel unit pass through unchanged; numeric-looking tokens
// are parsed as integer pixels; anything else maps to 16px.
func FontSizeCSS(token string) string {
	if px, ok := fontSizePx[token]; ok {
		return px
	}
	if strings.HasSuffix(token, "px") {
		return token
	}
	if n, err := strconv.Atoi(strings.TrimSpace(token)); err == nil {
		return fmt.Sprintf("%dpx", n)
	}
	return "16px"
}

var iconSizePx = map[string]int{
	"sm": 16,
	"md": 20,
	"lg": 24,
	"xl": 32,
}

// IconSizePx maps an icon size token to integer pixels; unrecognized
// tokens map to 20.
func IconSizePx(token string) int {
	if px, ok := iconSizePx[token]; ok {
		return px
	}
	return 20
}
