package services

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// ApplyTemplate replaces every {{name}} placeholder in the template with
// its mapped value. A placeholder whose name is absent from the mapping
// becomes an empty string. The result is trimmed. This never fails
// regardless of template content.
func ApplyTemplate(template string, values map[string]string) string {
	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		return values[name]
	})
	return strings.TrimSpace(result)
}
