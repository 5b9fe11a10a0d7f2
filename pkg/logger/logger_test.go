package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/logger"
)

type ctxKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("json output with service attribute", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Service: "lexicond"})
		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "lexicond", entry["service"])
	})

	t.Run("text output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Format: logger.FormatText})
		log.Info("hello", logger.Locale("sl"))
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "locale=sl")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "warn"})
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "loud"})
		log.Debug("dropped")
		log.Info("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("context extractors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{}, requestIDExtractor, nil)
		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "with id")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-1", entry["request_id"])
	})

	t.Run("extractors survive WithAttrs and WithGroup", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Format: logger.FormatText}, requestIDExtractor).
			With(slog.String("component", "catalog")).
			WithGroup("g")
		ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
		log.InfoContext(ctx, "grouped")
		assert.Contains(t, buf.String(), "component=catalog")
		assert.Contains(t, buf.String(), "g.request_id=req-2")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "nope", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.Attr{}, logger.Error(nil))
	require.Equal(t, "error", logger.Error(errors.New("x")).Key)
	require.Equal(t, "scope", logger.Scope("a.b").Key)
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("discarded")
}

func TestWithContextAttrs(t *testing.T) {
	t.Parallel()

	t.Run("without extractors returns the handler", func(t *testing.T) {
		t.Parallel()
		h := slog.NewJSONHandler(&bytes.Buffer{}, nil)
		require.Same(t, h, logger.WithContextAttrs(h, nil))
	})

	t.Run("adds attributes from context", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.WithContextAttrs(slog.NewJSONHandler(&buf, nil), requestIDExtractor))

		log.With("component", "test").InfoContext(context.WithValue(context.Background(), ctxKey{}, "req-7"), "hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-7", entry["request_id"])
		assert.Equal(t, "test", entry["component"])
	})
}
