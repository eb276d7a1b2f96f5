package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// RequestLogger логирует завершённые запросы. Уровень зависит от кода ответа.
func RequestLogger(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			format := "%s %s -> %d in %s (request_id=%s)"
			args := []interface{}{r.Method, RouteName(r), rec.status, time.Since(start), GetRequestID(r.Context())}

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error(format, args...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn(format, args...)
			default:
				logger.Info(format, args...)
			}
		})
	}
}
