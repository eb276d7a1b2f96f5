package router

import (
	"context"

	"github.com/m04kA/yetal-bot/internal/domain"
)

// Deliverer отправляет ответ обработчика в Telegram
type Deliverer interface {
	Deliver(ctx context.Context, target domain.Target, response domain.Response) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учёта вызовов обработчиков
type Metrics interface {
	RecordHandler(handler string)
	RecordHandlerFault(handler string)
}
