package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// DefaultLocaleParam is the cookie and query parameter name carrying an explicit locale.
const DefaultLocaleParam = "locale"

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Extractor    Extractor
	extractorSet bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleExtractor sets a custom locale extractor chain.
// Accept-Language negotiation still runs when every source misses.
func WithLocaleExtractor(ext Extractor) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// Locale returns middleware that resolves the request locale and stores a
// bound i18n.LocaleTranslator in the request context.
//
// Resolution order: "locale" cookie, "locale" query parameter, then the
// Accept-Language header negotiated against the catalog locales. Explicit
// values for locales the catalog does not know are ignored.
func Locale(catalog *i18n.Catalog, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.extractorSet {
		cfg.Extractor = NewExtractor(
			FromCookie(DefaultLocaleParam),
			FromQuery(DefaultLocaleParam),
		)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, ok := cfg.Extractor.Extract(r)
			if !ok || !catalog.HasLocale(locale) {
				locale = i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"), catalog.Locales())
			}
			if locale == "" {
				locale = catalog.DefaultLocale()
			}

			w.Header().Set("Content-Language", locale)
			w.Header().Add("Vary", "Accept-Language")

			ctx := i18n.WithTranslator(r.Context(), i18n.NewLocaleTranslator(catalog, locale))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
