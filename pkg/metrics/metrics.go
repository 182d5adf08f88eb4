package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Business
	PaymentSessionsCreated *prometheus.CounterVec
	PaymentsCompleted      *prometheus.CounterVec
	SlotConflicts          *prometheus.CounterVec
}

// New registers the service metrics in the default Prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry registers the service metrics in reg
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
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
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
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

		PaymentSessionsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_sessions_created_total",
			Help:        "Checkout sessions created, by event type",
			ConstLabels: constLabels,
		}, []string{"event_type"}),

		PaymentsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "payments_completed_total",
			Help:        "Bookings moved to completed, by event type",
			ConstLabels: constLabels,
		}, []string{"event_type"}),

		SlotConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_conflicts_total",
			Help:        "Attempts to claim a date/slot already held by a completed booking",
			ConstLabels: constLabels,
		}, []string{"stage"}),
	}
}

// IncPaymentSession учитывает созданную checkout-сессию
func (m *Metrics) IncPaymentSession(eventType string) {
	m.PaymentSessionsCreated.WithLabelValues(eventType).Inc()
}

// IncPaymentCompleted учитывает подтверждённую оплату
func (m *Metrics) IncPaymentCompleted(eventType string) {
	m.PaymentsCompleted.WithLabelValues(eventType).Inc()
}

// IncSlotConflict учитывает попытку занять уже оплаченный слот
func (m *Metrics) IncSlotConflict(stage string) {
	m.SlotConflicts.WithLabelValues(stage).Inc()
}

// Noop заглушка для запуска без метрик
type Noop struct{}

func (Noop) IncPaymentSession(string)   {}
func (Noop) IncPaymentCompleted(string) {}
func (Noop) IncSlotConflict(string)     {}
