package menu

import (
	"github.com/m04kA/yetal-bot/internal/catalog"
	"github.com/m04kA/yetal-bot/internal/domain"
	"github.com/m04kA/yetal-bot/internal/usecase/router"
)

// Catalog интерфейс каталога текстов
type Catalog interface {
	Render(key catalog.Key, params catalog.Params) string
}

// Keyboards интерфейс построителя клавиатур
type Keyboards interface {
	MainMenu() *domain.Keyboard
	BackButton() *domain.Keyboard
}

// Registrar интерфейс роутера для регистрации обработчиков
type Registrar interface {
	HandleCommand(command string, handler router.HandlerFunc)
	HandleCallback(data string, handler router.HandlerFunc)
	Fallback(handler router.HandlerFunc)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
