package telegram

import "errors"

var (
	// ErrSendMessage возвращается при ошибке отправки сообщения
	ErrSendMessage = errors.New("service.telegram: failed to send message")

	// ErrEditMessage возвращается при ошибке редактирования сообщения
	ErrEditMessage = errors.New("service.telegram: failed to edit message")

	// ErrInvalidChatID возвращается при некорректном chat_id
	ErrInvalidChatID = errors.New("service.telegram: invalid chat_id")

	// ErrInvalidMessageID возвращается при редактировании без message_id
	ErrInvalidMessageID = errors.New("service.telegram: invalid message_id")

	// ErrEmptyMessage возвращается при пустом тексте сообщения
	ErrEmptyMessage = errors.New("service.telegram: message text is empty")

	// ErrSetWebhook возвращается при ошибке установки webhook
	ErrSetWebhook = errors.New("service.telegram: failed to set webhook")

	// ErrDeleteWebhook возвращается при ошибке удаления webhook
	ErrDeleteWebhook = errors.New("service.telegram: failed to delete webhook")

	// ErrGetMe возвращается, если не удалось получить информацию о боте
	ErrGetMe = errors.New("service.telegram: failed to get bot identity")

	// ErrWebhookInfo возвращается, если не удалось получить состояние webhook
	ErrWebhookInfo = errors.New("service.telegram: failed to get webhook info")
)
