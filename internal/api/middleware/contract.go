package middleware

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для HTTP метрик
type Metrics interface {
	RecordHTTPRequest(route, method string, status int, duration time.Duration)
}
