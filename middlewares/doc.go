// Package middlewares provides net/http middleware for the lexicon server.
// Every middleware has the func(http.Handler) http.Handler shape and plugs
// into chi with r.Use.
//
// # Request ID
//
// RequestID assigns an ID to each request. Upstream IDs from X-Request-ID or
// X-Correlation-ID are reused, otherwise a UUID is generated. Pair it with
// RequestIDExtractor so every log line carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	r.Use(middlewares.RequestID())
//
// # Recover
//
// Recover catches panics, logs them with a capped stack trace and responds
// with 500:
//
//	r.Use(middlewares.Recover(middlewares.WithRecoverLogger(log)))
//
// # Locale
//
// Locale resolves the request locale from the "locale" cookie, the "locale"
// query parameter or Accept-Language, and stores an i18n.LocaleTranslator
// in the request context:
//
//	r.Use(middlewares.Locale(catalog))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		title := i18n.T(r.Context(), "home.title")
//	}
//
// # CORS, Timeout and BearerToken
//
// CORS lets browser clients fetch bundles cross-origin, Timeout bounds
// request duration and BearerToken guards the admin routes.
package middlewares
