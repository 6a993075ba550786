package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Connection pool
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec
	DBQueryDuration    *prometheus.HistogramVec

	// Бизнес-метрики
	ReservationsCreated   *prometheus.CounterVec
	ReservationsCancelled *prometheus.CounterVec
	ReservationsCleaned   *prometheus.CounterVec
	BookingConflicts      *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре (для тестов - отдельный реестр)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		ReservationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of created reservations",
			ConstLabels: constLabels,
		}, []string{"source"}),

		ReservationsCancelled: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_cancelled_total",
			Help:        "Total number of cancelled reservations",
			ConstLabels: constLabels,
		}, []string{"mode"}),

		ReservationsCleaned: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_cleaned_total",
			Help:        "Total number of expired reservations removed by cleanup",
			ConstLabels: constLabels,
		}, []string{}),

		BookingConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of rejected bookings due to conflicts",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}
}

// Методы ниже безопасны для nil-получателя: при выключенных метриках сервисы получают nil

// ObserveCreated учитывает созданные бронирования по источнику (single, batch)
func (m *Metrics) ObserveCreated(source string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.ReservationsCreated.WithLabelValues(source).Add(float64(count))
}

// ObserveCancelled учитывает отменённые бронирования по режиму (single, group, all)
func (m *Metrics) ObserveCancelled(mode string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.ReservationsCancelled.WithLabelValues(mode).Add(float64(count))
}

// ObserveCleaned учитывает бронирования, удалённые фоновой очисткой
func (m *Metrics) ObserveCleaned(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.ReservationsCleaned.WithLabelValues().Add(float64(count))
}

// ObserveConflict учитывает отклонённое из-за пересечения бронирование
func (m *Metrics) ObserveConflict(reason string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(reason).Inc()
}
