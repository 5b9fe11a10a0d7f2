// Package logger provides structured logging with context extraction and Sentry integration.
//
// It extends log/slog with automatic context-based attribute injection and
// optional Sentry error reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "debug", Format: logger.FormatText}, requestIDExtractor)
//	log.InfoContext(ctx, "bundle served", logger.Locale("sl"))
//
// # Context Extractors
//
// A ContextExtractor pulls a single attribute from the context of each log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run per call, so request-scoped values such as request IDs are
// always fresh. Returning false skips the attribute.
//
// # Sentry Integration
//
// When Config.Sentry.DSN is set, records are sent both to the local handler
// and to Sentry: errors create Issues, warnings are stored as logs. Without a
// DSN, or when initialization fails, logging continues locally.
//
// # Library Default
//
// NewNope returns a logger that discards everything; packages use it when the
// caller does not supply a logger.
package logger
