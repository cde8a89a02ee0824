// Package metrics exposes prometheus instrumentation for github api calls and dashboard requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ghcontributors"

// Metrics holds app collectors.
type Metrics struct {
	githubRequests *prometheus.CounterVec
	githubDuration prometheus.Histogram
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates collectors and registers them in given registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		githubRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "github",
			Name:      "requests_total",
			Help:      "Github api requests by response status code.",
		}, []string{"code"}),
		githubDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "github",
			Name:      "request_duration_seconds",
			Help:      "Github api request latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Handled http requests by handler and status code.",
		}, []string{"handler", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Http request handling latency by handler.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler"}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.githubRequests,
		m.githubDuration,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler returns http handler exposing registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveGithubRequest records single github api call.
// Code 0 means the request failed before receiving response.
func (m *Metrics) ObserveGithubRequest(code int, d time.Duration) {
	m.githubRequests.WithLabelValues(codeLabel(code)).Inc()
	m.githubDuration.Observe(d.Seconds())
}

// ObserveHTTPRequest records single handled http request.
func (m *Metrics) ObserveHTTPRequest(handler string, code int, d time.Duration) {
	m.httpRequests.WithLabelValues(handler, codeLabel(code)).Inc()
	m.httpDuration.WithLabelValues(handler).Observe(d.Seconds())
}

func codeLabel(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code)
}
