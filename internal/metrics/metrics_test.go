package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-zajac/ghcontributors/internal/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedHTTPDoer(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	doer := NewHTTPDoer(&mock.HTTPDoer{
		Statuses: []int{http.StatusOK, http.StatusOK, http.StatusNotFound},
	}, m)
	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	for i := 0; i < 3; i++ {
		_, err := doer.Do(req)
		require.NoError(t, err)
	}

	failingDoer := NewHTTPDoer(&mock.HTTPDoer{
		DoFunc: func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		},
	}, m)
	_, err := failingDoer.Do(req)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.githubRequests.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.githubRequests.WithLabelValues("404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.githubRequests.WithLabelValues("error")))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.ObserveHTTPRequest("dashboard", http.StatusOK, 20*time.Millisecond)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `ghcontributors_http_requests_total{code="200",handler="dashboard"} 1`), body)
}
