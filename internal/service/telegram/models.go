package telegram

import "time"

// WebhookStatus состояние webhook по данным getWebhookInfo
type WebhookStatus struct {
	URL                string
	PendingUpdateCount int
	LastErrorMessage   string
	LastErrorAt        time.Time // Нулевое значение - ошибок не было
}

// HasError проверяет, сообщал ли Telegram об ошибке доставки
func (s WebhookStatus) HasError() bool {
	return s.LastErrorMessage != ""
}
