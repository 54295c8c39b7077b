package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	p.ObserveRequest(http.MethodGet, "/users", http.StatusOK, 10*time.Millisecond)
	p.ObserveRequest(http.MethodGet, "/users", http.StatusOK, 20*time.Millisecond)
	p.ObserveRequest(http.MethodGet, "/users", 0, time.Millisecond)

	assert.Equal(t, float64(3), testutil.ToFloat64(p.RequestsTotal.WithLabelValues(http.MethodGet, "/users", "200")))
}

func TestTrackInFlight(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	done := p.TrackInFlight(http.MethodPost)
	assert.Equal(t, float64(1), testutil.ToFloat64(p.InFlight.WithLabelValues(http.MethodPost)))

	done()
	assert.Equal(t, float64(0), testutil.ToFloat64(p.InFlight.WithLabelValues(http.MethodPost)))
}

func TestObserveQuery(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	p.ObserveQuery("users.create", "", time.Millisecond)
	p.ObserveQuery("users.create", "unique_violation", time.Millisecond)
	p.ObserveQuery("users.create", "unique_violation", time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(p.DBErrorsTotal.WithLabelValues("users.create", "unique_violation")))
	assert.Equal(t, 1, testutil.CollectAndCount(p.DBErrorsTotal))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())
	p.ObserveRequest(http.MethodDelete, "/users/delete/{id}", http.StatusNoContent, time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "accounts_http_requests_total")
	assert.Contains(t, string(body), `route="/users/delete/{id}"`)
}
