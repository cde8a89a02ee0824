package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/m-zajac/ghcontributors/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Service returns repository contributors and their influence scores.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/ghcontributors/internal/api/http Service
type Service interface {
	Contributors(ctx context.Context, repo string, filter app.Filter) (app.Repository, []app.Contributor, error)
	InfluenceScore(ctx context.Context, repo string, login string) (app.Score, error)
}

// NewMux creates router for app's http server.
// Score endpoint and dashboard score buttons are available only if scoringEnabled is true.
// If m is not nil, requests are instrumented and metrics are exposed under /metrics.
func NewMux(
	service Service,
	timeout time.Duration,
	scoringEnabled bool,
	m *metrics.Metrics,
	l logrus.FieldLogger,
) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	loggingMiddleware := NewLoggingMiddleware(l)
	wrap := func(name string, h http.HandlerFunc) http.HandlerFunc {
		h = timeoutMiddleware(h)
		h = NewMetricsMiddleware(m, name)(h)
		return loggingMiddleware(h)
	}

	mx := http.NewServeMux()

	dashboardHandler := NewDashboardHandler(service, scoringEnabled, l)
	mx.HandleFunc("/", wrap("dashboard", dashboardHandler))

	contributorsPath := "/api/contributors/"
	contributorsHandler := NewContributorsHandler(
		func(r *http.Request) string {
			return strings.TrimPrefix(r.URL.Path, contributorsPath)
		},
		service,
		l,
	)
	mx.HandleFunc(contributorsPath, wrap("contributors", contributorsHandler))

	if scoringEnabled {
		scorePath := "/api/score/"
		scoreHandler := NewScoreHandler(
			func(r *http.Request) (string, string) {
				p := strings.Trim(strings.TrimPrefix(r.URL.Path, scorePath), "/")
				i := strings.LastIndex(p, "/")
				if i < 0 {
					return p, ""
				}
				return p[:i], p[i+1:]
			},
			service,
			l,
		)
		mx.HandleFunc(scorePath, wrap("score", scoreHandler))
	}

	if m != nil {
		mx.Handle("/metrics", m.Handler())
	}

	return mx
}
