package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy      *bluemonday.Policy
	translationPolicy *bluemonday.Policy
	initOnce          sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Translations are rendered inline, so block-level elements are dropped.
		translationPolicy = bluemonday.NewPolicy()
		translationPolicy.AllowStandardURLs()
		translationPolicy.AllowElements(
			"br",
			"strong", "b", "em", "i", "u",
			"small", "sub", "sup",
			"code", "span",
		)
		translationPolicy.AllowAttrs("href").OnElements("a")
		translationPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeTranslation removes dangerous markup from a translation value,
// keeping inline formatting and links. Values without markup are returned
// unchanged so apostrophes and ampersands in plain text stay readable.
func SanitizeTranslation(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	initPolicies()
	return translationPolicy.Sanitize(s)
}

// StripHTML removes every tag and returns unescaped plain text.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	initPolicies()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
