package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/health"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()
		resp := health.Run(context.Background(), nil)
		require.Equal(t, health.StatusHealthy, resp.Status)
		require.Empty(t, resp.Checks)
	})

	t.Run("aggregates results", func(t *testing.T) {
		t.Parallel()
		resp := health.Run(context.Background(), health.Checks{
			"ok":   func(context.Context) error { return nil },
			"fail": func(context.Context) error { return errors.New("down") },
		})
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.StatusHealthy, resp.Checks["ok"].Status)
		require.Equal(t, health.StatusUnhealthy, resp.Checks["fail"].Status)
		require.Equal(t, "down", resp.Checks["fail"].Error)
	})

	t.Run("reports timeouts", func(t *testing.T) {
		t.Parallel()
		resp := health.Run(context.Background(), health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(10*time.Millisecond))
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Contains(t, resp.Checks["slow"].Error, health.ErrCheckTimeout.Error())
	})
}

func TestGate(t *testing.T) {
	t.Parallel()

	var gate health.Gate
	require.ErrorIs(t, gate.Check(context.Background()), health.ErrNotReady)
	gate.Open()
	require.NoError(t, gate.Check(context.Background()))
	gate.Close()
	require.ErrorIs(t, gate.Check(context.Background()), health.ErrNotReady)
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	var gate health.Gate
	handler := health.ReadinessHandler(health.Checks{"translations": gate.Check})

	t.Run("not ready", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "Service Unavailable", rec.Body.String())
	})

	t.Run("ready as json", func(t *testing.T) {
		gate.Open()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		handler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, health.StatusHealthy, resp.Status)
		require.Equal(t, health.StatusHealthy, resp.Checks["translations"].Status)
	})
}
