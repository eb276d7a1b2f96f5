package router

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/m04kA/yetal-bot/internal/domain"
)

// FallbackHandlerName имя обработчика неизвестных команд (в логах и метриках)
const FallbackHandlerName = "unknown"

// HandlerFunc обработчик события: возвращает ровно один ответ
type HandlerFunc func(ctx context.Context, update domain.Update) (domain.Response, error)

type route struct {
	name    string
	handler HandlerFunc
}

// Router выбирает обработчик по команде или callback id и доставляет ответ.
// Таблицы заполняются при старте и после этого только читаются.
type Router struct {
	commands  map[string]route
	callbacks map[string]route
	fallback  *route

	deliverer Deliverer
	apology   string
	logger    Logger
	metrics   Metrics
}

// New создаёт роутер. apology - текст извинения, отправляемый при сбое обработчика.
// metrics может быть nil.
func New(deliverer Deliverer, apology string, logger Logger, metrics Metrics) *Router {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Router{
		commands:  make(map[string]route),
		callbacks: make(map[string]route),
		deliverer: deliverer,
		apology:   apology,
		logger:    logger,
		metrics:   metrics,
	}
}

// HandleCommand регистрирует обработчик команды (без "/").
// Повторная регистрация - ошибка программиста.
func (r *Router) HandleCommand(command string, handler HandlerFunc) {
	command = strings.ToLower(command)
	if _, exists := r.commands[command]; exists {
		panic(fmt.Sprintf("router: command %q already registered", command))
	}
	r.commands[command] = route{name: command, handler: handler}
}

// HandleCallback регистрирует обработчик нажатия кнопки с точным совпадением data
func (r *Router) HandleCallback(data string, handler HandlerFunc) {
	if _, exists := r.callbacks[data]; exists {
		panic(fmt.Sprintf("router: callback %q already registered", data))
	}
	r.callbacks[data] = route{name: "callback_" + data, handler: handler}
}

// Fallback регистрирует обработчик незарегистрированных команд
func (r *Router) Fallback(handler HandlerFunc) {
	r.fallback = &route{name: FallbackHandlerName, handler: handler}
}

// Dispatch обрабатывает одно событие.
// Ошибки и паники обработчика и доставки не выходят наружу: они логируются,
// а пользователю отправляется извинение. Ошибка возвращается только если
// контекст завершён до начала обработки.
func (r *Router) Dispatch(ctx context.Context, update domain.Update) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrContextDone, err)
	}

	rt, ok := r.resolve(update)
	if !ok {
		return nil
	}

	r.metrics.RecordHandler(rt.name)

	if err := r.run(ctx, rt, update); err != nil {
		r.metrics.RecordHandlerFault(rt.name)
		r.logger.Error("Error in %s (user %d, chat %d): %v", rt.name, update.UserID, update.ChatID, err)
		r.apologize(ctx, update)
	}

	return nil
}

// resolve выбирает обработчик для события
func (r *Router) resolve(update domain.Update) (route, bool) {
	switch update.Kind {
	case domain.UpdateKindCommand:
		if rt, ok := r.commands[strings.ToLower(update.Command)]; ok {
			return rt, true
		}
		if r.fallback != nil {
			return *r.fallback, true
		}
		r.logger.Warn("No handler for command /%s and no fallback registered", update.Command)
		return route{}, false

	case domain.UpdateKindCallback:
		if rt, ok := r.callbacks[update.CallbackData]; ok {
			return rt, true
		}
		r.logger.Warn("Unknown callback %q from user %d, ignoring", update.CallbackData, update.UserID)
		return route{}, false

	default:
		r.logger.Debug("Skipping update of kind %s", update.Kind)
		return route{}, false
	}
}

// run вызывает обработчик и доставляет ответ, превращая панику в ошибку
func (r *Router) run(ctx context.Context, rt route, update domain.Update) (err error) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Debug("Stack trace for %s: %s", rt.name, debug.Stack())
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, p)
		}
	}()

	response, err := rt.handler(ctx, update)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHandler, err)
	}

	if err := r.deliverer.Deliver(ctx, update.Target(), response); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return nil
}

// apologize отправляет извинение новым сообщением. Ошибки только логируются.
func (r *Router) apologize(ctx context.Context, update domain.Update) {
	if !update.HasChat() {
		return
	}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Panic while sending apology to chat %d: %v", update.ChatID, p)
		}
	}()

	target := domain.Target{ChatID: update.ChatID}
	response := domain.Response{
		Text:      r.apology,
		Mode:      domain.DeliveryModeSend,
		ParseMode: domain.ParseModePlain,
	}

	if err := r.deliverer.Deliver(ctx, target, response); err != nil {
		r.logger.Error("Error in error handler: failed to send apology to chat %d: %v", update.ChatID, err)
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordHandler(string)      {}
func (nopMetrics) RecordHandlerFault(string) {}
