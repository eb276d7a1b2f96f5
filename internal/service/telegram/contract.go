package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// BotAPI интерфейс для Telegram Bot API
// Абстракция над tgbotapi.BotAPI для упрощения тестирования
type BotAPI interface {
	// Send отправляет сообщение или редактирует существующее
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)

	// Request выполняет запрос без сообщения в ответе (webhook, answerCallbackQuery)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)

	// GetUpdatesChan возвращает канал для получения обновлений (long polling)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel

	// StopReceivingUpdates останавливает long polling и закрывает канал обновлений
	StopReceivingUpdates()

	// GetMe возвращает информацию о боте
	GetMe() (tgbotapi.User, error)

	// GetWebhookInfo возвращает состояние webhook
	GetWebhookInfo() (tgbotapi.WebhookInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Metrics интерфейс для учёта доставок
type Metrics interface {
	RecordDelivery(mode string, err error)
}
