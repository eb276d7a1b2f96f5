package domain

// UpdateKind различает типы входящих событий
type UpdateKind int

const (
	UpdateKindCommand  UpdateKind = iota + 1 // Команда вида /start
	UpdateKindCallback                       // Нажатие inline-кнопки
)

// String возвращает имя типа события (используется в логах и метриках)
func (k UpdateKind) String() string {
	switch k {
	case UpdateKindCommand:
		return "command"
	case UpdateKindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Update представляет одно входящее событие от Telegram после нормализации.
// Создаётся адаптером доставки (webhook или long polling) и далее не изменяется.
type Update struct {
	Kind UpdateKind

	// Command имя команды без "/" и без суффикса @botname (только для UpdateKindCommand)
	Command string

	// CallbackData идентификатор нажатой кнопки (только для UpdateKindCallback)
	CallbackData string

	// CallbackQueryID нужен для answerCallbackQuery
	CallbackQueryID string

	UserID    int64
	ChatID    int64
	MessageID int // Для callback - сообщение, которое нужно отредактировать
}

// NewCommandUpdate создаёт событие команды
func NewCommandUpdate(command string, userID, chatID int64, messageID int) Update {
	return Update{
		Kind:      UpdateKindCommand,
		Command:   command,
		UserID:    userID,
		ChatID:    chatID,
		MessageID: messageID,
	}
}

// NewCallbackUpdate создаёт событие нажатия кнопки
func NewCallbackUpdate(data, queryID string, userID, chatID int64, messageID int) Update {
	return Update{
		Kind:            UpdateKindCallback,
		CallbackData:    data,
		CallbackQueryID: queryID,
		UserID:          userID,
		ChatID:          chatID,
		MessageID:       messageID,
	}
}

// IsCommand проверяет, является ли событие командой
func (u Update) IsCommand() bool {
	return u.Kind == UpdateKindCommand
}

// IsCallback проверяет, является ли событие нажатием кнопки
func (u Update) IsCallback() bool {
	return u.Kind == UpdateKindCallback
}

// HasChat проверяет, известен ли чат, в который можно ответить
func (u Update) HasChat() bool {
	return u.ChatID != 0
}

// Target возвращает адрес доставки ответа на это событие
func (u Update) Target() Target {
	return Target{
		ChatID:          u.ChatID,
		MessageID:       u.MessageID,
		CallbackQueryID: u.CallbackQueryID,
	}
}
