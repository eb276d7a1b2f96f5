package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/yetal-bot/internal/domain"
)

// Decoder приводит обновления Telegram к domain.Update с учётом username бота
type Decoder struct {
	botUsername string
}

// NewDecoder создаёт декодер. Пустой botUsername - суффикс @botname не проверяется.
func NewDecoder(botUsername string) *Decoder {
	return &Decoder{botUsername: strings.TrimPrefix(botUsername, "@")}
}

// Decode возвращает false, если обновление не адресовано роутеру
// (обычный текст, правка, другие типы).
// Команда с суффиксом чужого бота сохраняет суффикс и попадает в fallback роутера.
func (d *Decoder) Decode(update tgbotapi.Update) (domain.Update, bool) {
	if cq := update.CallbackQuery; cq != nil {
		var userID, chatID int64
		var messageID int

		if cq.From != nil {
			userID = cq.From.ID
		}
		if cq.Message != nil {
			messageID = cq.Message.MessageID
			if cq.Message.Chat != nil {
				chatID = cq.Message.Chat.ID
			}
		}

		return domain.NewCallbackUpdate(cq.Data, cq.ID, userID, chatID, messageID), true
	}

	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return domain.Update{}, false
	}

	var userID, chatID int64
	if msg.From != nil {
		userID = msg.From.ID
	}
	if msg.Chat != nil {
		chatID = msg.Chat.ID
	}

	return domain.NewCommandUpdate(d.commandName(msg.CommandWithAt()), userID, chatID, msg.MessageID), true
}

// commandName убирает суффикс @botname, если команда адресована этому боту
func (d *Decoder) commandName(command string) string {
	name, addressee, found := strings.Cut(command, "@")
	if found && d.botUsername != "" && !strings.EqualFold(addressee, d.botUsername) {
		return strings.ToLower(command)
	}
	return strings.ToLower(name)
}
