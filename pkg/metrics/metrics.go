package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbOpenConnections *prometheus.GaugeVec
	dbIdleConnections *prometheus.GaugeVec

	mailTasksEnqueued *prometheus.CounterVec
	mailTasksFailed   *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry.
// Метка service проставляется вызывающим кодом на каждом наблюдении
func New() *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		dbQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"service", "operation", "status"},
		),
		dbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"service", "operation"},
		),
		dbOpenConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_open_connections",
				Help: "Number of open database connections",
			},
			[]string{"service"},
		),
		dbIdleConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_idle_connections",
				Help: "Number of idle database connections",
			},
			[]string{"service"},
		),
		mailTasksEnqueued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mail_tasks_enqueued_total",
				Help: "Total number of enqueued mail tasks",
			},
			[]string{"service"},
		),
		mailTasksFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mail_tasks_failed_total",
				Help: "Total number of mail tasks moved to dead letter",
			},
			[]string{"service"},
		),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueriesTotal,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbIdleConnections,
		m.mailTasksEnqueued,
		m.mailTasksFailed,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(service, method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(service, operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats фиксирует состояние connection pool
func (m *Metrics) SetDBPoolStats(service string, open, idle int) {
	m.dbOpenConnections.WithLabelValues(service).Set(float64(open))
	m.dbIdleConnections.WithLabelValues(service).Set(float64(idle))
}

// IncMailEnqueued фиксирует постановку email-задачи в очередь
func (m *Metrics) IncMailEnqueued(service string) {
	m.mailTasksEnqueued.WithLabelValues(service).Inc()
}

// IncMailFailed фиксирует перенос email-задачи в dead letter
func (m *Metrics) IncMailFailed(service string) {
	m.mailTasksFailed.WithLabelValues(service).Inc()
}
