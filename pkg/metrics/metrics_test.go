package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := New("reservation-engine")

	m.ShiftAdded("added")
	m.ShiftAdded("added")
	m.ShiftAdded("duplicate")
	m.ReservationCreated()
	m.ReservationConfirmed("expired")

	body := scrape(t, m)
	assert.Contains(t, body, `reservation_engine_shifts_added_total{result="added"} 2`)
	assert.Contains(t, body, `reservation_engine_shifts_added_total{result="duplicate"} 1`)
	assert.Contains(t, body, `reservation_engine_reservations_created_total 1`)
	assert.Contains(t, body, `reservation_engine_reservation_confirmations_total{outcome="expired"} 1`)
}

func TestMetrics_HTTPRequests(t *testing.T) {
	m := New("engine")

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/slots", http.StatusOK, 20*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `engine_http_requests_total{method="GET",path="/api/v1/slots",status="200"} 1`)
	assert.Contains(t, body, `engine_http_request_duration_seconds_count{method="GET",path="/api/v1/slots"} 1`)
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("engine")
		New("engine")
	})
}
