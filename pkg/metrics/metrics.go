package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics метрики сервиса в собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	shiftsAddedTotal              *prometheus.CounterVec
	reservationsCreatedTotal      prometheus.Counter
	reservationConfirmationsTotal *prometheus.CounterVec
}

// New создает метрики с namespace по имени сервиса
// Дефисы в имени заменяются на подчёркивания
func New(serviceName string) *Metrics {
	namespace := strings.ReplaceAll(serviceName, "-", "_")

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		shiftsAddedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shifts_added_total",
			Help:      "Shift add attempts by result",
		}, []string{"result"}),

		reservationsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "Total number of created reservations",
		}),

		reservationConfirmationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_confirmations_total",
			Help:      "Reservation confirmations by outcome",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.shiftsAddedTotal,
		m.reservationsCreatedTotal,
		m.reservationConfirmationsTotal,
	)

	return m
}

// Handler отдаёт метрики реестра в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest записывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ShiftAdded считает попытку добавить смену ("added" или "duplicate")
func (m *Metrics) ShiftAdded(result string) {
	m.shiftsAddedTotal.WithLabelValues(result).Inc()
}

// ReservationCreated считает созданное бронирование
func (m *Metrics) ReservationCreated() {
	m.reservationsCreatedTotal.Inc()
}

// ReservationConfirmed считает подтверждение по исходу
func (m *Metrics) ReservationConfirmed(outcome string) {
	m.reservationConfirmationsTotal.WithLabelValues(outcome).Inc()
}
