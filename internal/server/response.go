package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/lexicon/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v before the status line goes out, so an encoding
// failure still becomes a 500. The error is reported by logRequests.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		recordError(r.Context(), err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: http.StatusText(status)})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

type requestErrorKey struct{}

// requestError collects a handler error for the request log line.
type requestError struct {
	mu  sync.Mutex
	err error
}

func recordError(ctx context.Context, err error) {
	if re, ok := ctx.Value(requestErrorKey{}).(*requestError); ok {
		re.mu.Lock()
		re.err = errors.Join(re.err, err)
		re.mu.Unlock()
	}
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status  int
	size    int64
	written bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.written {
		return
	}
	w.written = true
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// logRequests logs one line per request. Health probes are logged at debug level.
func logRequests(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			reqErr := &requestError{}
			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestErrorKey{}, reqErr)))

			level := slog.LevelInfo
			switch {
			case sw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case r.URL.Path == "/health/live" || r.URL.Path == "/health/ready":
				level = slog.LevelDebug
			}
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("size", sw.size),
				slog.Duration("duration", time.Since(start)),
			}
			reqErr.mu.Lock()
			if reqErr.err != nil {
				attrs = append(attrs, logger.Error(reqErr.err))
			}
			reqErr.mu.Unlock()
			log.LogAttrs(r.Context(), level, "http request", attrs...)
		})
	}
}

// internalError logs err and writes a generic 500 response.
func internalError(w http.ResponseWriter, r *http.Request, log *slog.Logger, msg string, err error) {
	log.ErrorContext(r.Context(), msg, logger.Error(err))
	writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
