package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/lexicon/pkg/logger"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en"

// Catalog resolves translation keys against a nested store.
// The store and plural rules are fixed after construction; the current
// locale, the fallback locale and the extras store may be changed at
// runtime and are guarded by a mutex.
type Catalog struct {
	store          Store
	pluralRules    map[string]PluralRule
	messageFormats map[string]MessageFormatFunc
	defaultLocale  string
	fallbacks      bool
	strictRules    bool
	missingHandler func(locale, scope string)
	logger         *slog.Logger

	mu             sync.RWMutex
	locale         string
	fallbackLocale string
	extras         Store

	// locales that already produced an English plural fallback warning
	warned sync.Map
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a Catalog with the given options.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		store:          make(Store),
		pluralRules:    make(map[string]PluralRule),
		messageFormats: make(map[string]MessageFormatFunc),
		defaultLocale:  DefaultLocale,
		fallbacks:      true,
		logger:         logger.NewNope(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.defaultLocale == "" {
		return nil, ErrEmptyLocale
	}

	var errs []error
	for _, locale := range c.allLocales() {
		if _, ok := c.pluralRules[locale]; ok {
			continue
		}
		if rule, ok := PluralRuleForLanguage(locale); ok {
			c.pluralRules[locale] = rule
			continue
		}
		if c.strictRules {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingPluralRule, locale))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithDefaultLocale sets the locale used as the last-but-one fallback step.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		c.defaultLocale = locale
		return nil
	}
}

// WithLocale sets the initial current locale.
func WithLocale(locale string) Option {
	return func(c *Catalog) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		c.locale = locale
		return nil
	}
}

// WithFallbackLocale sets the locale tried right after the requested one.
func WithFallbackLocale(locale string) Option {
	return func(c *Catalog) error {
		c.fallbackLocale = locale
		return nil
	}
}

// WithStore deep-merges an in-memory store into the catalog.
func WithStore(store Store) Option {
	return func(c *Catalog) error {
		c.store.Merge(store)
		return nil
	}
}

// WithExtras sets the secondary store consulted when the main store misses.
func WithExtras(store Store) Option {
	return func(c *Catalog) error {
		if c.extras == nil {
			c.extras = make(Store)
		}
		c.extras.Merge(store)
		return nil
	}
}

// WithSource loads a store from src and merges it into the catalog.
func WithSource(ctx context.Context, src Source) Option {
	return func(c *Catalog) error {
		if src == nil {
			return ErrNilSource
		}
		store, err := src.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading translations: %w", err)
		}
		c.store.Merge(store)
		return nil
	}
}

// WithPluralRule registers the plural rule for a locale.
func WithPluralRule(locale string, rule PluralRule) Option {
	return func(c *Catalog) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		c.pluralRules[locale] = rule
		return nil
	}
}

// WithFallbacks enables or disables the locale fallback chain. Enabled by default.
func WithFallbacks(enabled bool) Option {
	return func(c *Catalog) error {
		c.fallbacks = enabled
		return nil
	}
}

// WithStrictPluralRules makes New fail when a locale in the store has
// neither a registered nor a built-in plural rule.
func WithStrictPluralRules() Option {
	return func(c *Catalog) error {
		c.strictRules = true
		return nil
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) error {
		if log != nil {
			c.logger = log
		}
		return nil
	}
}

// WithMissingHandler sets a function called whenever a key misses in every
// locale of the fallback chain. Useful for spotting untranslated strings.
func WithMissingHandler(handler func(locale, scope string)) Option {
	return func(c *Catalog) error {
		c.missingHandler = handler
		return nil
	}
}

// WithMessageFormat registers a precompiled message format function under key.
func WithMessageFormat(key string, fn MessageFormatFunc) Option {
	return func(c *Catalog) error {
		if key == "" {
			return errors.New("i18n: message format key cannot be empty")
		}
		if fn == nil {
			return errors.New("i18n: message format function cannot be nil")
		}
		c.messageFormats[key] = fn
		return nil
	}
}

// SetLocale changes the current locale. An empty value resets it to the default locale.
func (c *Catalog) SetLocale(locale string) {
	c.mu.Lock()
	c.locale = locale
	c.mu.Unlock()
}

// Locale returns the current locale, or the default locale when none is set.
func (c *Catalog) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.locale == "" {
		return c.defaultLocale
	}
	return c.locale
}

// SetFallbackLocale changes the fallback locale. Empty disables that step.
func (c *Catalog) SetFallbackLocale(locale string) {
	c.mu.Lock()
	c.fallbackLocale = locale
	c.mu.Unlock()
}

// FallbackLocale returns the configured fallback locale.
func (c *Catalog) FallbackLocale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fallbackLocale
}

// DefaultLocale returns the catalog's default locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales returns the default locale followed by the other locales in the store, sorted.
func (c *Catalog) Locales() []string {
	return c.allLocales()
}

// HasLocale reports whether the store carries translations for locale.
func (c *Catalog) HasLocale(locale string) bool {
	_, ok := c.store[locale]
	return ok
}

// SetExtras replaces the extras store. The catalog keeps its own reference;
// callers must not mutate store afterwards.
func (c *Catalog) SetExtras(store Store) {
	c.mu.Lock()
	c.extras = store
	c.mu.Unlock()
}

// Extras returns the current extras store.
func (c *Catalog) Extras() Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.extras
}

// PluralRuleFor returns the rule for locale. Lookup goes from the exact locale
// to its base language; when neither is known the English rule is used and a
// warning is logged once per locale.
func (c *Catalog) PluralRuleFor(locale string) PluralRule {
	if rule, ok := c.pluralRules[locale]; ok {
		return rule
	}
	if base := baseLanguage(locale); base != locale {
		if rule, ok := c.pluralRules[base]; ok {
			return rule
		}
	}
	if rule, ok := PluralRuleForLanguage(locale); ok {
		return rule
	}
	if _, seen := c.warned.LoadOrStore(locale, struct{}{}); !seen {
		c.logger.Warn("no plural rule registered, using english rule", slog.String("locale", locale))
	}
	return DefaultPluralRule
}

func (c *Catalog) allLocales() []string {
	locales := []string{c.defaultLocale}
	for _, locale := range c.store.Locales() {
		if locale != c.defaultLocale {
			locales = append(locales, locale)
		}
	}
	return slices.Clip(locales)
}
