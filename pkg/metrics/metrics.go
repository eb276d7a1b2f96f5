package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	updatesReceived *prometheus.CounterVec
	handlerCalls    *prometheus.CounterVec
	handlerFaults   *prometheus.CounterVec
	deliveries      *prometheus.CounterVec

	webhookPending prometheus.Gauge
	buildInfo      *prometheus.GaugeVec
}

// New создаёт и регистрирует метрики в reg.
// Все метрики получают префикс serviceName.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route name, method and status code.",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route name and method.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		updatesReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "updates_received_total",
				Help:      "Telegram updates by transport (webhook/polling) and kind (command/callback/skipped).",
			},
			[]string{"transport", "kind"},
		),
		handlerCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "handler_invocations_total",
				Help:      "Bot handler invocations by handler name.",
			},
			[]string{"handler"},
		),
		handlerFaults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "handler_faults_total",
				Help:      "Bot handler failures (errors and panics) by handler name.",
			},
			[]string{"handler"},
		),
		deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "deliveries_total",
				Help:      "Outbound Telegram deliveries by mode (send/edit) and result (ok/error).",
			},
			[]string{"mode", "result"},
		),
		webhookPending: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: serviceName,
				Name:      "webhook_pending_updates",
				Help:      "Pending update count reported by getWebhookInfo.",
			},
		),
		buildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: serviceName,
				Name:      "build_info",
				Help:      "A constant metric with labels for version and delivery mode.",
			},
			[]string{"version", "mode"},
		),
	}

	reg.MustRegister(
		m.httpRequests, m.httpDuration,
		m.updatesReceived, m.handlerCalls, m.handlerFaults, m.deliveries,
		m.webhookPending, m.buildInfo,
	)

	return m
}

// RecordHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordUpdate учитывает входящее обновление
func (m *Metrics) RecordUpdate(transport, kind string) {
	m.updatesReceived.WithLabelValues(transport, kind).Inc()
}

// RecordHandler учитывает вызов обработчика
func (m *Metrics) RecordHandler(handler string) {
	m.handlerCalls.WithLabelValues(handler).Inc()
}

// RecordHandlerFault учитывает сбой обработчика
func (m *Metrics) RecordHandlerFault(handler string) {
	m.handlerFaults.WithLabelValues(handler).Inc()
}

// RecordDelivery учитывает отправку ответа в Telegram
func (m *Metrics) RecordDelivery(mode string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.deliveries.WithLabelValues(mode, result).Inc()
}

// SetWebhookPending выставляет число необработанных обновлений
func (m *Metrics) SetWebhookPending(n int) {
	m.webhookPending.Set(float64(n))
}

// SetBuildInfo выставляет константную метрику с версией
func (m *Metrics) SetBuildInfo(version, mode string) {
	m.buildInfo.WithLabelValues(version, mode).Set(1)
}
