package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig enables forwarding of warnings and errors to Sentry.
type SentryConfig struct {
	DSN         string     `env:"SENTRY_DSN"`
	Environment string     `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string     `env:"SENTRY_RELEASE"`
	MinLevel    slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

func newSentryHandler(cfg SentryConfig, service string) (slog.Handler, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		ServerName:  service,
		EnableLogs:  true,
	})
	if err != nil {
		return nil, err
	}

	// Only errors become issues. Warnings are kept as searchable logs
	// unless MinLevel raises the floor.
	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevels = logLevels[1:]
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background()), nil
}
