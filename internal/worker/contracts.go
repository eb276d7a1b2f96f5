package worker

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/yetal-bot/internal/domain"
	"github.com/m04kA/yetal-bot/internal/service/telegram"
)

// Dispatcher интерфейс роутера событий
type Dispatcher interface {
	Dispatch(ctx context.Context, update domain.Update) error
}

// Decoder интерфейс декодера обновлений Telegram
type Decoder interface {
	Decode(update tgbotapi.Update) (domain.Update, bool)
}

// WebhookInspector интерфейс для получения состояния webhook
type WebhookInspector interface {
	WebhookStatus() (telegram.WebhookStatus, error)
}

// Metrics интерфейс для метрик воркеров
type Metrics interface {
	RecordUpdate(transport, kind string)
	SetWebhookPending(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) RecordUpdate(string, string) {}
func (nopMetrics) SetWebhookPending(int)       {}
