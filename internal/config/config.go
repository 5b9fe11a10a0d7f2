// Package config loads the lexicond configuration from the environment.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/lexicon/pkg/db"
	"github.com/dmitrymomot/lexicon/pkg/logger"
	"github.com/dmitrymomot/lexicon/pkg/redis"
	"github.com/dmitrymomot/lexicon/pkg/storage"
)

var (
	ErrParsingConfig = errors.New("config: failed to parse environment")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Cache backends for encoded bundles.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the full process configuration.
type Config struct {
	Log     logger.Config
	DB      db.Config
	Redis   redis.Config
	S3      storage.Config
	Catalog Catalog
	HTTP    HTTP
}

// HTTP configures the listener and request handling.
type HTTP struct {
	Address         string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	// AdminToken enables the override admin routes when set.
	AdminToken string `env:"ADMIN_TOKEN"`
}

// Catalog configures where translations come from and how they are served.
type Catalog struct {
	// TranslationsDir is a local directory of JSON and YAML translation files.
	TranslationsDir string `env:"TRANSLATIONS_DIR"`
	DefaultLocale   string `env:"DEFAULT_LOCALE" envDefault:"en"`
	FallbackLocale  string `env:"FALLBACK_LOCALE"`
	// ReloadSchedule is a cron spec for reloading overrides.
	ReloadSchedule    string        `env:"RELOAD_SCHEDULE" envDefault:"@every 5m"`
	CacheBackend      string        `env:"BUNDLE_CACHE" envDefault:"memory"`
	CacheTTL          time.Duration `env:"BUNDLE_CACHE_TTL" envDefault:"10m"`
	CacheMaxEntries   int           `env:"BUNDLE_CACHE_MAX_ENTRIES" envDefault:"256"`
	Verbose           bool          `env:"I18N_VERBOSE"`
	StrictPluralRules bool          `env:"STRICT_PLURAL_RULES"`
}

// Load reads an optional .env file and parses the process environment.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()
	return parse(env.Options{})
}

// LoadFrom parses cfg from the given variables only.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	if c.Catalog.DefaultLocale == "" {
		errs = append(errs, errors.New("DEFAULT_LOCALE must not be empty"))
	}
	switch c.Catalog.CacheBackend {
	case CacheMemory:
	case CacheRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("BUNDLE_CACHE=redis requires REDIS_URL"))
		}
	default:
		errs = append(errs, errors.New("BUNDLE_CACHE must be memory or redis"))
	}
	if c.Catalog.TranslationsDir == "" && !c.S3.Enabled() {
		errs = append(errs, errors.New("either TRANSLATIONS_DIR or S3_BUCKET is required"))
	}
	if c.Catalog.TranslationsDir != "" {
		if fi, err := os.Stat(c.Catalog.TranslationsDir); err != nil || !fi.IsDir() {
			errs = append(errs, errors.New("TRANSLATIONS_DIR must be an existing directory"))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
