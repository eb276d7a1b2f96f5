package telegram_webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/yetal-bot/internal/api/handlers"
	"github.com/m04kA/yetal-bot/internal/config"
	"github.com/m04kA/yetal-bot/internal/domain"
)

const (
	// TransportWebhook метка транспорта для метрик
	TransportWebhook = "webhook"

	bodyOK     = "ok"
	bodyNoData = "no data"
	bodyError  = "error"
)

type Handler struct {
	dispatcher    Dispatcher
	decoder       Decoder
	mode          config.Mode
	localModeText string
	logger        Logger
	metrics       Metrics
}

// NewHandler создаёт обработчик webhook. Вне режима webhook запросы отклоняются
// с текстом localModeText. metrics может быть nil.
func NewHandler(dispatcher Dispatcher, decoder Decoder, mode config.Mode, localModeText string, logger Logger, metrics Metrics) *Handler {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Handler{
		dispatcher:    dispatcher,
		decoder:       decoder,
		mode:          mode,
		localModeText: localModeText,
		logger:        logger,
		metrics:       metrics,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.mode != config.ModeWebhook {
		handlers.RespondText(w, http.StatusBadRequest, h.localModeText)
		return
	}

	// Парсим webhook update от Telegram
	update, err := decodeUpdate(r)
	if err != nil {
		h.logger.Debug("Rejected webhook payload: %v", err)
		handlers.RespondText(w, http.StatusBadRequest, bodyNoData)
		return
	}

	upd, ok := h.decoder.Decode(update)
	if !ok {
		h.metrics.RecordUpdate(TransportWebhook, "skipped")
		handlers.RespondText(w, http.StatusOK, bodyOK)
		return
	}
	h.metrics.RecordUpdate(TransportWebhook, upd.Kind.String())

	if err := h.dispatch(r.Context(), upd); err != nil {
		h.logger.Error("Webhook error for update %d: %v", update.UpdateID, err)
		handlers.RespondText(w, http.StatusInternalServerError, bodyError)
		return
	}

	handlers.RespondText(w, http.StatusOK, bodyOK)
}

// dispatch передаёт событие роутеру; паника превращается в ошибку
func (h *Handler) dispatch(ctx context.Context, upd domain.Update) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic during dispatch: %v", p)
		}
	}()

	return h.dispatcher.Dispatch(ctx, upd)
}

// decodeUpdate декодирует тело запроса. Пустое тело, null и {} считаются отсутствием данных.
func decodeUpdate(r *http.Request) (tgbotapi.Update, error) {
	var raw json.RawMessage
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		return tgbotapi.Update{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return tgbotapi.Update{}, fmt.Errorf("update is not an object: %w", err)
	}
	if len(fields) == 0 {
		return tgbotapi.Update{}, fmt.Errorf("update has no fields")
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(raw, &update); err != nil {
		return tgbotapi.Update{}, fmt.Errorf("decode update: %w", err)
	}

	return update, nil
}

type nopMetrics struct{}

func (nopMetrics) RecordUpdate(string, string) {}
