package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/sanitizer"
)

const varPrefix = "var."

type localesResponse struct {
	DefaultLocale  string   `json:"default_locale"`
	FallbackLocale string   `json:"fallback_locale,omitempty"`
	Version        string   `json:"version"`
	Locales        []string `json:"locales"`
}

func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	c := s.svc.Catalog()
	writeJSON(w, r, http.StatusOK, localesResponse{
		DefaultLocale:  c.DefaultLocale(),
		FallbackLocale: c.FallbackLocale(),
		Version:        s.svc.Version(),
		Locales:        c.Locales(),
	})
}

func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")

	data, version, err := s.svc.Bundle(r.Context(), locale)
	if err != nil {
		var notSupported *i18n.LocaleNotSupportedError
		if errors.As(err, &notSupported) {
			writeError(w, r, http.StatusNotFound, notSupported.Error())
			return
		}
		internalError(w, r, s.log, "failed to build bundle", err)
		return
	}

	etag := strconv.Quote(version)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=60, must-revalidate")
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// etagMatches implements the weak comparison of If-None-Match.
func etagMatches(header, etag string) bool {
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

type translateResponse struct {
	Count  *int   `json:"count,omitempty"`
	Locale string `json:"locale"`
	Scope  string `json:"scope"`
	Text   string `json:"text"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope := strings.TrimSpace(q.Get("scope"))
	if scope == "" {
		writeError(w, r, http.StatusBadRequest, "scope is required")
		return
	}

	opts := []i18n.Options{{Vars: queryVars(r)}}
	var count *int
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = i18n.Count(n)
		opts = append(opts, i18n.Options{Count: count})
	}

	locale := i18n.LocaleFromContext(r.Context())
	writeJSON(w, r, http.StatusOK, translateResponse{
		Locale: locale,
		Scope:  scope,
		Count:  count,
		Text:   s.svc.Translator(locale).Translate(scope, opts...),
	})
}

// queryVars collects var.<name> query parameters. Values are caller supplied,
// so markup is stripped before interpolation.
func queryVars(r *http.Request) i18n.M {
	vars := i18n.M{}
	for key, values := range r.URL.Query() {
		name, ok := strings.CutPrefix(key, varPrefix)
		if !ok || name == "" || len(values) == 0 {
			continue
		}
		vars[name] = sanitizer.StripHTML(values[0])
	}
	return vars
}

type formatResponse struct {
	Locale string  `json:"locale"`
	Kind   string  `json:"kind"`
	Value  float64 `json:"value"`
	Text   string  `json:"text"`
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	q := r.URL.Query()

	value, err := strconv.ParseFloat(q.Get("value"), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		writeError(w, r, http.StatusBadRequest, "value must be a finite number")
		return
	}

	var opts []i18n.NumberOption
	if raw := q.Get("precision"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 || p > 20 {
			writeError(w, r, http.StatusBadRequest, "precision must be an integer between 0 and 20")
			return
		}
		opts = append(opts, i18n.WithPrecision(p))
	}

	t := s.svc.Translator(i18n.LocaleFromContext(r.Context()))
	var text string
	switch kind {
	case "number":
		text = t.ToNumber(value, opts...)
	case "size":
		text = t.ToHumanSize(value, opts...)
	case "currency":
		text = t.ToCurrency(value, opts...)
	case "percentage":
		text = t.ToPercentage(value, opts...)
	default:
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown format %q", kind))
		return
	}

	writeJSON(w, r, http.StatusOK, formatResponse{Locale: t.Locale(), Kind: kind, Value: value, Text: text})
}
