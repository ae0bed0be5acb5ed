// Package middleware provides HTTP middleware for request logging and metrics.
package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// statusRecorder captures the response status code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging logs every request with method, path, status, and duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start).Milliseconds()
		if rec.status >= 500 {
			slog.Error("Request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", duration,
			)
		} else {
			slog.Info("Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"remote_addr", r.RemoteAddr,
				"duration_ms", duration,
			)
		}
	})
}
