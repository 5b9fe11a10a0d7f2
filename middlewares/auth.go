package middlewares

import (
	"crypto/subtle"
	"net/http"
)

// BearerToken returns middleware that only lets through requests carrying
// "Authorization: Bearer <token>". It guards the override admin routes.
func BearerToken(token string) func(http.Handler) http.Handler {
	extract := NewExtractor(FromBearerToken())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := extract.Extract(r)
			if !ok || token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="lexicon"`)
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
