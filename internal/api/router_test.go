package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/engine"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
	"github.com/m04kA/SMC-ReservationEngine/pkg/metrics"
)

func newServer(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	m := metrics.New("engine")
	e, err := engine.New(context.Background(), memory.NewStore(nil, nil), "client-1",
		engine.WithRecorder(m), engine.WithLogger(logger.NewNop()))
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(e, MetricsOptions{Collector: m, Path: "/metrics"}, logger.NewNop()))
	t.Cleanup(srv.Close)
	return srv, m
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_BookingFlow(t *testing.T) {
	srv, _ := newServer(t)

	shift := `{"providerId":"p1","date":"03/02/2099","startTime":"09:00 AM","endTime":"10:00 AM"}`
	assert.Equal(t, http.StatusCreated, post(t, srv, "/api/v1/shifts", shift).StatusCode)
	assert.Equal(t, http.StatusOK, post(t, srv, "/api/v1/shifts", shift).StatusCode)

	var slots struct {
		Dates []struct {
			Date  string `json:"date"`
			Slots []struct {
				Time string `json:"time"`
			} `json:"slots"`
		} `json:"dates"`
		Total int `json:"total"`
	}
	resp := get(t, srv, "/api/v1/slots?date="+url.QueryEscape("03/02/2099"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&slots))
	assert.Equal(t, 4, slots.Total)

	reservation := `{"date":"03/02/2099","time":"09:30 AM","providerId":"p1"}`
	assert.Equal(t, http.StatusCreated, post(t, srv, "/api/v1/reservations", reservation).StatusCode)
	assert.Equal(t, http.StatusOK, post(t, srv, "/api/v1/reservations/confirm", reservation).StatusCode)

	missing := `{"date":"03/02/2099","time":"09:45 AM","providerId":"p1"}`
	assert.Equal(t, http.StatusNoContent, post(t, srv, "/api/v1/reservations/confirm", missing).StatusCode)

	var list struct {
		Reservations []struct {
			ClientID string `json:"clientId"`
			State    string `json:"state"`
		} `json:"reservations"`
	}
	resp = get(t, srv, "/api/v1/reservations?confirmedOnly=true")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Reservations, 1)
	assert.Equal(t, "client-1", list.Reservations[0].ClientID)
	assert.Equal(t, "confirmed", list.Reservations[0].State)

	resp = get(t, srv, "/api/v1/slots")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&slots))
	assert.Equal(t, 3, slots.Total)
}

func TestRouter_ShiftsAndSettings(t *testing.T) {
	srv, _ := newServer(t)

	post(t, srv, "/api/v1/shifts", `{"providerId":"p2","date":"03/03/2099","startTime":"01:00 PM","endTime":"02:00 PM"}`)

	resp := get(t, srv, "/api/v1/shifts?providerId=p2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"shifts":[{"providerId":"p2","date":"03/03/2099","startTime":"01:00 PM","endTime":"02:00 PM"}]}`, string(body))

	resp = get(t, srv, "/api/v1/settings")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"holdPeriodMinutes":30`)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	srv, _ := newServer(t)

	post(t, srv, "/api/v1/shifts", `{"providerId":"p1","date":"03/02/2099","startTime":"09:00 AM","endTime":"10:00 AM"}`)
	post(t, srv, "/api/v1/reservations", `{"date":"03/02/2099","time":"09:00 AM","providerId":"p1"}`)

	resp := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `engine_shifts_added_total{result="added"} 1`)
	assert.Contains(t, string(body), `engine_reservations_created_total 1`)
	assert.Contains(t, string(body), `path="/api/v1/shifts"`)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv, _ := newServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/shifts", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var body struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusMethodNotAllowed, body.Code)

	// неизвестный путь остаётся 404
	missing := get(t, srv, "/api/v1/unknown")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
