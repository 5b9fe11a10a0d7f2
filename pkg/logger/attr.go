package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Locale records a locale code under the key "locale".
func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

// Scope records a translation key under the key "scope".
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}
