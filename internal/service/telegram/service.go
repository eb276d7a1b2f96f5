package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/yetal-bot/internal/domain"
)

// Service сервис для работы с Telegram Bot API.
// Не хранит изменяемого состояния и безопасен для конкурентного использования.
type Service struct {
	bot     BotAPI
	logger  Logger
	metrics Metrics
}

// NewService создает новый экземпляр Telegram сервиса. metrics может быть nil.
func NewService(bot BotAPI, logger Logger, metrics Metrics) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Service{
		bot:     bot,
		logger:  logger,
		metrics: metrics,
	}
}

// Deliver доставляет ответ обработчика: новым сообщением или редактированием
func (s *Service) Deliver(ctx context.Context, target domain.Target, response domain.Response) error {
	err := s.deliver(ctx, target, response)
	s.metrics.RecordDelivery(response.Mode.String(), err)
	return err
}

func (s *Service) deliver(ctx context.Context, target domain.Target, response domain.Response) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendMessage, err)
	}

	if target.ChatID == 0 {
		return ErrInvalidChatID
	}

	if response.Text == "" {
		return ErrEmptyMessage
	}

	if response.Mode == domain.DeliveryModeEdit {
		return s.editMessage(target, response)
	}

	return s.sendMessage(target, response)
}

// sendMessage отправляет новое сообщение
func (s *Service) sendMessage(target domain.Target, response domain.Response) error {
	msg := tgbotapi.NewMessage(target.ChatID, response.Text)
	msg.ParseMode = response.ParseMode

	// Добавляем inline-кнопки если есть
	if response.HasKeyboard() {
		msg.ReplyMarkup = buildInlineKeyboard(response.Keyboard)
	}

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendMessage, err)
	}

	return nil
}

// editMessage подтверждает callback и заменяет текст и клавиатуру сообщения
func (s *Service) editMessage(target domain.Target, response domain.Response) error {
	if target.MessageID == 0 {
		return ErrInvalidMessageID
	}

	// Убираем "часики" на кнопке. Ошибка не критична для редактирования.
	if target.CallbackQueryID != "" {
		if _, err := s.bot.Request(tgbotapi.NewCallback(target.CallbackQueryID, "")); err != nil {
			s.logger.Warn("Failed to answer callback query %s: %v", target.CallbackQueryID, err)
		}
	}

	var edit tgbotapi.EditMessageTextConfig
	if response.HasKeyboard() {
		edit = tgbotapi.NewEditMessageTextAndMarkup(target.ChatID, target.MessageID, response.Text, buildInlineKeyboard(response.Keyboard))
	} else {
		edit = tgbotapi.NewEditMessageText(target.ChatID, target.MessageID, response.Text)
	}
	edit.ParseMode = response.ParseMode

	if _, err := s.bot.Send(edit); err != nil {
		return fmt.Errorf("%w: %v", ErrEditMessage, err)
	}

	return nil
}

// buildInlineKeyboard создает inline-клавиатуру из описания
func buildInlineKeyboard(keyboard *domain.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard.Rows))

	for _, buttons := range keyboard.Rows {
		if len(buttons) == 0 {
			continue
		}
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(buttons))
		for _, btn := range buttons {
			if btn.IsLink() {
				row = append(row, tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL))
			} else {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.CallbackData))
			}
		}
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// SetWebhook устанавливает webhook URL для получения обновлений от Telegram
func (s *Service) SetWebhook(webhookURL string) error {
	webhook, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("%w: failed to create webhook config: %v", ErrSetWebhook, err)
	}

	if _, err := s.bot.Request(webhook); err != nil {
		return fmt.Errorf("%w: %v", ErrSetWebhook, err)
	}

	return nil
}

// DeleteWebhook удаляет webhook (переключает на long polling).
// Идемпотентен: Telegram отвечает успехом и когда webhook не установлен.
func (s *Service) DeleteWebhook() error {
	deleteWebhook := tgbotapi.DeleteWebhookConfig{
		DropPendingUpdates: false, // Сохраняем необработанные сообщения
	}

	if _, err := s.bot.Request(deleteWebhook); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteWebhook, err)
	}

	return nil
}

// GetUpdatesChan возвращает канал для получения обновлений в режиме long polling
func (s *Service) GetUpdatesChan(pollTimeout int) tgbotapi.UpdatesChannel {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollTimeout

	return s.bot.GetUpdatesChan(updateConfig)
}

// StopReceivingUpdates останавливает long polling
func (s *Service) StopReceivingUpdates() {
	s.bot.StopReceivingUpdates()
}

// Identity возвращает username бота
func (s *Service) Identity() (string, error) {
	me, err := s.bot.GetMe()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGetMe, err)
	}

	return me.UserName, nil
}

// WebhookStatus возвращает состояние webhook
func (s *Service) WebhookStatus() (WebhookStatus, error) {
	info, err := s.bot.GetWebhookInfo()
	if err != nil {
		return WebhookStatus{}, fmt.Errorf("%w: %v", ErrWebhookInfo, err)
	}

	status := WebhookStatus{
		URL:                info.URL,
		PendingUpdateCount: info.PendingUpdateCount,
		LastErrorMessage:   info.LastErrorMessage,
	}
	if info.LastErrorDate != 0 {
		status.LastErrorAt = time.Unix(int64(info.LastErrorDate), 0).UTC()
	}

	return status, nil
}

type nopMetrics struct{}

func (nopMetrics) RecordDelivery(string, error) {}
