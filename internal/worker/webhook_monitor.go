package worker

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
)

// WebhookMonitor периодически проверяет состояние webhook через getWebhookInfo.
// Только наблюдает: логирует расхождения и обновляет метрику, webhook не переустанавливает.
type WebhookMonitor struct {
	inspector   WebhookInspector
	expectedURL string
	interval    time.Duration
	logger      Logger
	metrics     Metrics
	scheduler   *gocron.Scheduler
}

// NewWebhookMonitor создает новый экземпляр монитора. metrics может быть nil.
func NewWebhookMonitor(inspector WebhookInspector, expectedURL string, interval time.Duration, logger Logger, metrics Metrics) *WebhookMonitor {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &WebhookMonitor{
		inspector:   inspector,
		expectedURL: expectedURL,
		interval:    interval,
		logger:      logger,
		metrics:     metrics,
		scheduler:   gocron.NewScheduler(time.UTC),
	}
}

// Start запускает периодическую проверку. Первая проверка выполняется сразу.
func (m *WebhookMonitor) Start() error {
	if m.interval <= 0 {
		return fmt.Errorf("webhook monitor: interval must be positive, got %s", m.interval)
	}

	if _, err := m.scheduler.Every(m.interval).Do(m.Check); err != nil {
		return fmt.Errorf("webhook monitor: failed to schedule check: %w", err)
	}

	m.logger.Info("Starting webhook monitor (every %s)", m.interval)
	m.scheduler.StartAsync()
	return nil
}

// Stop останавливает планировщик
func (m *WebhookMonitor) Stop() {
	m.logger.Info("Stopping webhook monitor")
	m.scheduler.Stop()
}

// Check выполняет одну проверку состояния webhook.
// URL webhook содержит токен, поэтому в логи не попадает.
func (m *WebhookMonitor) Check() {
	status, err := m.inspector.WebhookStatus()
	if err != nil {
		m.logger.Warn("Webhook check failed: %v", err)
		return
	}

	m.metrics.SetWebhookPending(status.PendingUpdateCount)

	switch {
	case status.URL == "":
		m.logger.Error("Webhook is not registered in Telegram")
	case status.URL != m.expectedURL:
		m.logger.Error("Registered webhook differs from the configured one")
	}

	if status.HasError() {
		m.logger.Warn("Telegram reported webhook delivery error at %s: %s (pending updates: %d)",
			status.LastErrorAt.Format(time.RFC3339), status.LastErrorMessage, status.PendingUpdateCount)
		return
	}

	m.logger.Debug("Webhook is healthy, pending updates: %d", status.PendingUpdateCount)
}
