// Package limiter throttles outgoing github api requests.
package limiter

import (
	"fmt"
	"net/http"

	"github.com/m-zajac/ghcontributors/internal/app"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

type limitedHTTPDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewHTTPDoer wraps doer so it executes at most maxRate requests per second,
// allowing bursts of given size. Non-positive maxRate disables limiting.
func NewHTTPDoer(doer HTTPDoer, maxRate float64, burst int) HTTPDoer {
	if maxRate <= 0 {
		return doer
	}
	if burst < 1 {
		burst = 1
	}

	return &limitedHTTPDoer{
		doer:    doer,
		limiter: rate.NewLimiter(rate.Limit(maxRate), burst),
	}
}

// Do executes http request. If limit is exceeded, blocks until call rate is within limit.
// When request context ends before the limiter lets the request through, TooManyRequestsError is returned.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		return nil, app.TooManyRequestsError(fmt.Sprintf("github requests limit reached: %v", err))
	}

	return d.doer.Do(r)
}
