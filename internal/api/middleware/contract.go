package middleware

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector счетчики HTTP запросов
type MetricsCollector interface {
	ObserveHTTPRequest(method, path string, status int, durationSeconds float64)
}
