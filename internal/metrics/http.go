package metrics

import (
	"net/http"
	"time"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

type instrumentedHTTPDoer struct {
	doer    HTTPDoer
	metrics *Metrics
}

// NewHTTPDoer wraps doer, recording status code and latency of every call.
func NewHTTPDoer(doer HTTPDoer, m *Metrics) HTTPDoer {
	return &instrumentedHTTPDoer{
		doer:    doer,
		metrics: m,
	}
}

// Do executes http request.
func (d *instrumentedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := d.doer.Do(r)

	code := 0
	if err == nil {
		code = resp.StatusCode
	}
	d.metrics.ObserveGithubRequest(code, time.Since(start))

	return resp, err
}
