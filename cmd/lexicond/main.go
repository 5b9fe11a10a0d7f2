// Command lexicond serves translation bundles and server-side translations
// from JSON/YAML files on disk or in S3, with site overrides kept in PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/lexicon/internal/config"
	"github.com/dmitrymomot/lexicon/internal/server"
	"github.com/dmitrymomot/lexicon/middlewares"
	"github.com/dmitrymomot/lexicon/pkg/cache"
	"github.com/dmitrymomot/lexicon/pkg/db"
	"github.com/dmitrymomot/lexicon/pkg/health"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/logger"
	"github.com/dmitrymomot/lexicon/pkg/overrides"
	"github.com/dmitrymomot/lexicon/pkg/redis"
	"github.com/dmitrymomot/lexicon/pkg/storage"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "lexicond:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
	if cfg.Log.Sentry.DSN != "" {
		defer sentry.Flush(2 * time.Second)
	}

	var (
		runOpts = []server.RunOption{
			server.Address(cfg.HTTP.Address),
			server.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
			server.Logger(log),
		}
		srvOpts = []server.Option{
			server.WithLogger(log),
			server.WithCORSOrigins(cfg.HTTP.CORSOrigins...),
			server.WithRequestTimeout(cfg.HTTP.RequestTimeout),
		}
		svcOpts = []server.ServiceOption{
			server.WithServiceLogger(log),
		}
	)

	catalog, s3, err := buildCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}
	if s3 != nil {
		srvOpts = append(srvOpts, server.WithReadinessCheck("s3", s3.Healthcheck()))
	}

	var repo *overrides.Repository
	if cfg.DB.ConnectionString != "" {
		pool, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return err
		}
		runOpts = append(runOpts, server.ShutdownHook(db.Shutdown(pool)))
		if err := db.Migrate(ctx, pool, overrides.Migrations(), cfg.DB.MigrationsTable, log); err != nil {
			pool.Close()
			return err
		}
		repo = overrides.NewRepository(pool)
		svcOpts = append(svcOpts, server.WithOverrides(repo))
		srvOpts = append(srvOpts, server.WithReadinessCheck("postgres", db.Healthcheck(pool)))
		if cfg.HTTP.AdminToken != "" {
			srvOpts = append(srvOpts, server.WithAdmin(cfg.HTTP.AdminToken, repo))
		}
	} else {
		log.Info("DATABASE_URL not set, overrides disabled")
	}

	bundles, closeCache, err := buildBundleCache(ctx, cfg, &srvOpts)
	if err != nil {
		return err
	}
	runOpts = append(runOpts, server.ShutdownHook(closeCache))
	svcOpts = append(svcOpts, server.WithBundleCache(bundles, cfg.Catalog.CacheTTL))
	if cfg.Catalog.Verbose {
		svcOpts = append(svcOpts, server.WithVerbose())
	}

	svc, err := server.NewService(catalog, svcOpts...)
	if err != nil {
		return err
	}
	if err := svc.Reload(ctx); err != nil {
		return err
	}

	if repo != nil {
		scheduler, err := server.NewScheduler(svc, cfg.Catalog.ReloadSchedule, log)
		if err != nil {
			return err
		}
		scheduler.Start()
		// Stop reloading before the pool closes.
		runOpts = append([]server.RunOption{server.ShutdownHook(scheduler.Shutdown)}, runOpts...)
	}

	gate := &health.Gate{}
	srvOpts = append(srvOpts, server.WithGate(gate))
	runOpts = append(runOpts, server.OnReady(gate.Open))

	log.Info("catalog ready",
		slog.String("default_locale", catalog.DefaultLocale()),
		slog.Any("locales", catalog.Locales()),
		slog.String("version", svc.Version()),
		slog.Bool("verbose", cfg.Catalog.Verbose),
	)
	return server.Run(ctx, server.New(svc, srvOpts...).Handler(), runOpts...)
}

// buildCatalog loads translations from the configured directory and bucket.
func buildCatalog(ctx context.Context, cfg config.Config, log *slog.Logger) (*i18n.Catalog, *storage.S3Storage, error) {
	opts := []i18n.Option{
		i18n.WithDefaultLocale(cfg.Catalog.DefaultLocale),
		i18n.WithLogger(log),
		i18n.WithMissingHandler(func(locale, scope string) {
			log.Debug("missing translation", logger.Locale(locale), logger.Scope(scope))
		}),
	}
	if cfg.Catalog.FallbackLocale != "" {
		opts = append(opts, i18n.WithFallbackLocale(cfg.Catalog.FallbackLocale))
	}
	if cfg.Catalog.Verbose {
		// Verbose output shows where each string comes from, so nothing is borrowed from other locales.
		opts = append(opts, i18n.WithFallbacks(false))
	}
	if cfg.Catalog.StrictPluralRules {
		opts = append(opts, i18n.WithStrictPluralRules())
	}

	if cfg.Catalog.TranslationsDir != "" {
		opts = append(opts, i18n.WithSource(ctx, i18n.DirSource(os.DirFS(cfg.Catalog.TranslationsDir))))
	}

	var s3 *storage.S3Storage
	if cfg.S3.Enabled() {
		var err error
		if s3, err = storage.New(cfg.S3); err != nil {
			return nil, nil, err
		}
		opts = append(opts, i18n.WithSource(ctx, storage.NewTranslationSource(s3, cfg.S3.Prefix)))
	}

	catalog, err := i18n.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return catalog, s3, nil
}

// buildBundleCache returns the bundle cache backend and its shutdown hook.
func buildBundleCache(ctx context.Context, cfg config.Config, srvOpts *[]server.Option) (cache.Cache[[]byte], func(context.Context) error, error) {
	if cfg.Catalog.CacheBackend == config.CacheRedis {
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		*srvOpts = append(*srvOpts, server.WithReadinessCheck("redis", redis.Healthcheck(client)))
		c := cache.NewRedis[[]byte](client, cache.BytesCodec{},
			cache.WithPrefix("lexicon:"),
			cache.WithRedisDefaultTTL(cfg.Catalog.CacheTTL),
		)
		return c, redis.Shutdown(client), nil
	}

	c := cache.NewMemory[[]byte](
		cache.WithDefaultTTL(cfg.Catalog.CacheTTL),
		cache.WithMaxEntries(cfg.Catalog.CacheMaxEntries),
	)
	return c, func(context.Context) error { return c.Close() }, nil
}
