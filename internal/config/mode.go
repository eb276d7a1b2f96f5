package config

// Mode режим получения обновлений от Telegram.
// Выбирается один раз при старте и не переключается во время работы.
type Mode string

const (
	ModeWebhook Mode = "webhook"
	ModePolling Mode = "polling"
)

// Label человекочитаемое имя режима для статус-страницы
func (m Mode) Label() string {
	if m == ModeWebhook {
		return "Webhook"
	}
	return "Polling"
}

// Environment значение поля mode в /health
func (m Mode) Environment() string {
	if m == ModeWebhook {
		return "production"
	}
	return "local"
}
