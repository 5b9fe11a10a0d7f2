package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultCORSMaxAge is how long browsers may cache a bundle preflight.
const DefaultCORSMaxAge = 12 * time.Hour

var (
	corsMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	corsHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", "If-None-Match", "Authorization"}
	corsExposed = []string{"ETag", "Content-Language", "X-Request-ID"}
)

type corsConfig struct {
	origins []string
	methods []string
	maxAge  time.Duration
}

// CORSOption configures the CORS middleware.
type CORSOption func(*corsConfig)

// WithAllowOrigins restricts cross-origin access to the listed origins.
// An empty list or "*" allows every origin.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *corsConfig) {
		cfg.origins = origins
	}
}

// WithAllowMethods replaces the read-only default method set.
func WithAllowMethods(methods ...string) CORSOption {
	return func(cfg *corsConfig) {
		cfg.methods = methods
	}
}

// WithCORSMaxAge sets the preflight cache duration. Zero omits the header.
func WithCORSMaxAge(d time.Duration) CORSOption {
	return func(cfg *corsConfig) {
		cfg.maxAge = d
	}
}

// CORS lets browser clients on other origins fetch bundles and translations.
// Disallowed origins are served without CORS headers, so the browser blocks them.
func CORS(opts ...CORSOption) func(http.Handler) http.Handler {
	cfg := &corsConfig{methods: corsMethods, maxAge: DefaultCORSMaxAge}
	for _, opt := range opts {
		opt(cfg)
	}

	anyOrigin := len(cfg.origins) == 0 || slices.Contains(cfg.origins, "*")
	methods := strings.Join(cfg.methods, ", ")
	headers := strings.Join(corsHeaders, ", ")
	exposed := strings.Join(corsExposed, ", ")
	maxAge := strconv.Itoa(int(cfg.maxAge.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || (!anyOrigin && !slices.Contains(cfg.origins, origin)) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			if anyOrigin {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Expose-Headers", exposed)

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			if cfg.maxAge > 0 {
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
