package config

import "errors"

var (
	// ErrDecode возвращается при ошибке разбора TOML файла
	ErrDecode = errors.New("config: failed to decode TOML config")

	// ErrEnv возвращается при ошибке разбора переменных окружения
	ErrEnv = errors.New("config: failed to parse environment")

	// ErrMissingToken возвращается, если токен бота не задан
	ErrMissingToken = errors.New("config: telegram bot token is required")

	// ErrInvalidToken возвращается, если токен нельзя использовать как сегмент пути
	ErrInvalidToken = errors.New("config: telegram bot token contains invalid characters")

	// ErrInvalidMode возвращается при неизвестном режиме работы
	ErrInvalidMode = errors.New("config: mode must be webhook or polling")

	// ErrMissingExternalURL возвращается, если для webhook не задан внешний адрес
	ErrMissingExternalURL = errors.New("config: external url is required in webhook mode")

	// ErrMissingContactEmail возвращается, если не задан контактный email
	ErrMissingContactEmail = errors.New("config: contact email is required")
)
