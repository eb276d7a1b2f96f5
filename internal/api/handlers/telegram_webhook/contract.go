package telegram_webhook

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/yetal-bot/internal/domain"
)

// Dispatcher интерфейс роутера событий
type Dispatcher interface {
	Dispatch(ctx context.Context, update domain.Update) error
}

// Decoder интерфейс декодера обновлений Telegram
type Decoder interface {
	Decode(update tgbotapi.Update) (domain.Update, bool)
}

// Metrics интерфейс для учёта входящих обновлений
type Metrics interface {
	RecordUpdate(transport, kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
