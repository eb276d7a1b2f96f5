package app

import "errors"

var (
	// ErrCatalog возвращается, если не удалось загрузить тексты бота
	ErrCatalog = errors.New("app: failed to load message catalog")

	// ErrDeliverySetup возвращается при ошибке настройки webhook/polling
	ErrDeliverySetup = errors.New("app: failed to set up update delivery")
)
