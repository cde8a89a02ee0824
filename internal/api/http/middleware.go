package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/m-zajac/ghcontributors/internal/metrics"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader is response header carrying request id.
const RequestIDHeader = "X-Request-ID"

// NewTimeoutMiddleware creates middleware that cancels requests context after given time.
func NewTimeoutMiddleware(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			h(w, r)
		}
	}
}

// NewLoggingMiddleware creates middleware that logs every request with generated request id.
func NewLoggingMiddleware(l logrus.FieldLogger) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			w.Header().Set(RequestIDHeader, requestID)

			sw := &statusWriter{ResponseWriter: w}
			h(sw, r)

			l.WithFields(logrus.Fields{
				"requestID": requestID,
				"method":    r.Method,
				"path":      r.URL.Path,
				"status":    sw.Status(),
				"duration":  time.Since(start),
			}).Info("request handled")
		}
	}
}

// NewMetricsMiddleware creates middleware recording request status and latency under handler name.
// If m is nil, returned middleware does nothing.
func NewMetricsMiddleware(m *metrics.Metrics, handler string) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		if m == nil {
			return h
		}
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			h(sw, r)
			m.ObserveHTTPRequest(handler, sw.Status(), time.Since(start))
		}
	}
}

// statusWriter remembers response status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Status returns written status code, 200 if handler didn't write anything.
func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
