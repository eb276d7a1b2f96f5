package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/m04kA/yetal-bot/internal/api/handlers"
)

// Recovery перехватывает панику обработчика и отвечает 500
func Recovery(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error("PANIC in %s %s: %v\n%s", r.Method, RouteName(r), p, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
