package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/m04kA/yetal-bot/internal/api/middleware"
)

// Имена маршрутов: используются в логах и метриках вместо путей
const (
	RouteStatus  = "status"
	RouteHealth  = "health"
	RouteWebhook = "webhook"
	RouteMetrics = "metrics"
)

// Handlers обработчики HTTP поверхности
type Handlers struct {
	Status  http.HandlerFunc
	Health  http.HandlerFunc
	Webhook http.HandlerFunc
	Metrics http.Handler // nil - метрики выключены
}

// Paths пути маршрутов, зависящие от конфигурации
type Paths struct {
	Webhook string
	Metrics string
}

// NewRouter собирает mux.Router со всеми маршрутами и middleware.
// metrics может быть nil.
func NewRouter(paths Paths, h Handlers, logger middleware.Logger, metrics middleware.Metrics) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Status).Methods(http.MethodGet, http.MethodHead).Name(RouteStatus)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet).Name(RouteHealth)
	r.HandleFunc(paths.Webhook, h.Webhook).Methods(http.MethodPost).Name(RouteWebhook)

	if h.Metrics != nil {
		r.Handle(paths.Metrics, h.Metrics).Methods(http.MethodGet).Name(RouteMetrics)
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	if metrics != nil {
		r.Use(middleware.MetricsMiddleware(metrics))
	}
	r.Use(middleware.Recovery(logger))

	return r
}
