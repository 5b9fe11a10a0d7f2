package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/lexicon/pkg/cache"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/logger"
)

// ErrReload is returned when overrides could not be reloaded.
var ErrReload = errors.New("server: failed to reload overrides")

// Service owns the catalog served over HTTP: it reloads overrides into the
// catalog extras and caches encoded client bundles per content version.
type Service struct {
	catalog   *i18n.Catalog
	verbose   *i18n.Verbose
	overrides i18n.Source
	bundles   *cache.Loader[[]byte]
	log       *slog.Logger

	verboseMode bool
	baseHash    string

	mu       sync.RWMutex
	version  string
	loadedAt time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithOverrides sets the source of the catalog extras.
func WithOverrides(src i18n.Source) ServiceOption {
	return func(s *Service) {
		s.overrides = src
	}
}

// WithBundleCache stores encoded bundles in c for ttl.
func WithBundleCache(c cache.Cache[[]byte], ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if c != nil {
			s.bundles = cache.NewLoader(c, ttl)
		}
	}
}

// WithVerbose routes translations through a Verbose decorator.
func WithVerbose() ServiceOption {
	return func(s *Service) {
		s.verboseMode = true
	}
}

// WithServiceLogger sets the service logger.
func WithServiceLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService wraps catalog.
func NewService(catalog *i18n.Catalog, opts ...ServiceOption) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("server: catalog is required")
	}
	s := &Service{catalog: catalog, log: logger.NewNope()}
	for _, opt := range opts {
		opt(s)
	}
	if s.verboseMode {
		s.verbose = i18n.NewVerbose(catalog, s.log)
	}
	if s.bundles == nil {
		// Keys carry the content version, so stale entries are never read
		// and the LRU bound is enough to keep memory flat.
		s.bundles = cache.NewLoader[[]byte](cache.NewMemory[[]byte](
			cache.WithCleanupInterval(0),
			cache.WithMaxEntries(64),
		), 0)
	}

	hash, err := digest(catalog.Locales(), catalog.DefaultLocale(), catalog.FallbackLocale(), bundleSnapshot(catalog))
	if err != nil {
		return nil, err
	}
	s.baseHash = hash
	if err := s.setExtras(catalog.Extras()); err != nil {
		return nil, err
	}
	return s, nil
}

// Catalog returns the underlying catalog.
func (s *Service) Catalog() *i18n.Catalog {
	return s.catalog
}

// Translator returns a translator bound to locale, decorated when verbose mode is on.
func (s *Service) Translator(locale string) *i18n.LocaleTranslator {
	t := i18n.NewLocaleTranslator(s.catalog, locale)
	if s.verbose != nil {
		t = t.Decorate(s.verbose)
	}
	return t
}

// Version identifies the content currently served. It changes whenever the
// extras change and is identical across instances serving the same data.
func (s *Service) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// LoadedAt returns the time of the last successful reload.
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Reload replaces the catalog extras with a fresh copy of the overrides.
// Without an overrides source it is a no-op. On failure the current extras stay.
func (s *Service) Reload(ctx context.Context) error {
	if s.overrides == nil {
		return nil
	}

	start := time.Now()
	extras, err := s.overrides.Load(ctx)
	if err != nil {
		return errors.Join(ErrReload, err)
	}

	previous := s.Version()
	s.catalog.SetExtras(extras)
	if err := s.setExtras(extras); err != nil {
		return errors.Join(ErrReload, err)
	}

	version := s.Version()
	if version != previous {
		if err := s.bundles.Purge(ctx); err != nil {
			s.log.WarnContext(ctx, "failed to purge bundle cache", logger.Error(err))
		}
	}
	s.log.InfoContext(ctx, "overrides reloaded",
		slog.String("version", version),
		slog.Bool("changed", version != previous),
		slog.Int("locales", len(extras)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// Bundle returns the JSON encoded client bundle for locale and its version.
func (s *Service) Bundle(ctx context.Context, locale string) ([]byte, string, error) {
	// Validate before touching the cache so unknown locales are never stored.
	if _, err := s.catalog.Bundle(locale); err != nil {
		return nil, "", err
	}

	version := s.Version()
	key := fmt.Sprintf("bundle:%s:%s", version, locale)
	data, err := s.bundles.Load(ctx, key, func(context.Context) ([]byte, error) {
		b, err := s.catalog.Bundle(locale)
		if err != nil {
			return nil, err
		}
		return json.Marshal(b)
	})
	if err != nil {
		return nil, "", err
	}
	return data, version, nil
}

func (s *Service) setExtras(extras i18n.Store) error {
	// nil and empty extras are the same content and must hash alike.
	if len(extras) == 0 {
		extras = nil
	}
	version, err := digest(s.baseHash, extras)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.version = version[:16]
	s.loadedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// bundleSnapshot collects every locale tree without extras.
func bundleSnapshot(c *i18n.Catalog) map[string]any {
	out := make(map[string]any)
	for _, locale := range c.Locales() {
		if b, err := c.Bundle(locale); err == nil {
			out[locale] = b.Translations[locale]
		}
	}
	return out
}

// digest hashes the JSON encoding of parts. encoding/json sorts map keys,
// so equal content yields equal digests.
func digest(parts ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		if err := enc.Encode(p); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
