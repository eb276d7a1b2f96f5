package router

import "errors"

var (
	// ErrContextDone возвращается, если контекст завершён до начала маршрутизации
	ErrContextDone = errors.New("router: context is done")

	// ErrHandler возвращается, если обработчик вернул ошибку
	ErrHandler = errors.New("router: handler failed")

	// ErrHandlerPanic возвращается, если обработчик или доставка запаниковали
	ErrHandlerPanic = errors.New("router: handler panicked")

	// ErrDelivery возвращается, если ответ не удалось доставить
	ErrDelivery = errors.New("router: failed to deliver response")
)
