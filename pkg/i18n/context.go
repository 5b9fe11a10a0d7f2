package i18n

import "context"

type translatorKey struct{}

// WithTranslator stores t in ctx.
func WithTranslator(ctx context.Context, t *LocaleTranslator) context.Context {
	return context.WithValue(ctx, translatorKey{}, t)
}

// TranslatorFromContext returns the translator stored in ctx, if any.
func TranslatorFromContext(ctx context.Context) (*LocaleTranslator, bool) {
	t, ok := ctx.Value(translatorKey{}).(*LocaleTranslator)
	return t, ok && t != nil
}

// T translates scope with the translator from ctx. Without one the scope is
// returned as is.
func T(ctx context.Context, scope string, vars ...M) string {
	if t, ok := TranslatorFromContext(ctx); ok {
		return t.T(scope, vars...)
	}
	return scope
}

// Tn is the pluralizing counterpart of T.
func Tn(ctx context.Context, scope string, n int, vars ...M) string {
	if t, ok := TranslatorFromContext(ctx); ok {
		return t.Tn(scope, n, vars...)
	}
	return scope
}

// LocaleFromContext returns the locale of the translator in ctx, or "".
func LocaleFromContext(ctx context.Context) string {
	if t, ok := TranslatorFromContext(ctx); ok {
		return t.Locale()
	}
	return ""
}
