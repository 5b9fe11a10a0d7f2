package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern accepts {{name}} and %{name}; the closing brace may be single or doubled.
var placeholderPattern = regexp.MustCompile(`(?:\{\{|%\{)(.*?)\}\}?`)

// Interpolate replaces placeholders in template with values from vars.
// Both {{name}} and %{name} are recognised. Values are inserted literally.
// A placeholder without a value is rendered as "[missing %{name} value]"
// so template and variable mismatches stay visible.
//
// Example:
//
//	Interpolate("Hello, %{name}! You have {{count}} messages.", M{"name": "John", "count": 5})
//	// "Hello, John! You have 5 messages."
func Interpolate(template string, vars M) string {
	if !strings.Contains(template, "{") {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		name := placeholderPattern.FindStringSubmatch(placeholder)[1]
		value, ok := vars[name]
		if !ok || value == nil {
			return "[missing " + placeholder + " value]"
		}
		return formatValue(value)
	})
}

func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
