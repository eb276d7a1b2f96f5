package worker

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TransportPolling метка транспорта для метрик
const TransportPolling = "polling"

// PollingHandler обрабатывает входящие обновления от Telegram в режиме long polling
type PollingHandler struct {
	dispatcher Dispatcher
	decoder    Decoder
	logger     Logger
	metrics    Metrics
}

// NewPollingHandler создаёт новый обработчик для long polling. metrics может быть nil.
func NewPollingHandler(dispatcher Dispatcher, decoder Decoder, logger Logger, metrics Metrics) *PollingHandler {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &PollingHandler{
		dispatcher: dispatcher,
		decoder:    decoder,
		logger:     logger,
		metrics:    metrics,
	}
}

// Start запускает обработку обновлений из канала.
// Блокирующий метод, должен вызываться в отдельной goroutine.
// Обновления обрабатываются строго по одному. Завершается при отмене ctx
// или закрытии канала (StopReceivingUpdates).
func (h *PollingHandler) Start(ctx context.Context, updatesChan tgbotapi.UpdatesChannel) {
	h.logger.Info("Bot is polling for updates")

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Stopping Telegram long polling handler...")
			return

		case update, ok := <-updatesChan:
			if !ok {
				h.logger.Info("Updates channel closed, long polling handler stopped")
				return
			}
			h.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает одно обновление от Telegram
func (h *PollingHandler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	upd, ok := h.decoder.Decode(update)
	if !ok {
		h.metrics.RecordUpdate(TransportPolling, "skipped")
		return
	}

	h.metrics.RecordUpdate(TransportPolling, upd.Kind.String())
	h.logger.Debug("Received %s update %d from user %d (chat %d)", upd.Kind, update.UpdateID, upd.UserID, upd.ChatID)

	if err := h.dispatcher.Dispatch(ctx, upd); err != nil {
		h.logger.Warn("Update %d was not dispatched: %v", update.UpdateID, err)
	}
}
