// Package sanitizer cleans translation text with bluemonday policies.
//
// SanitizeTranslation is applied to override values before they are stored;
// StripHTML is applied to caller supplied interpolation variables.
package sanitizer
