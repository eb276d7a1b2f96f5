package domain

// ParseMode константы для режимов парсинга текста в Telegram
const (
	ParseModeHTML     = "HTML"
	ParseModeMarkdown = "Markdown" // Все шаблоны бота написаны в legacy Markdown
	ParseModePlain    = ""
)

// Идентификаторы callback-кнопок
const (
	CallbackContact  = "contact"
	CallbackMainMenu = "main_menu"
)

// DeliveryMode определяет способ доставки ответа
type DeliveryMode int

const (
	DeliveryModeSend DeliveryMode = iota // Новое сообщение
	DeliveryModeEdit                     // Редактирование существующего сообщения
)

// String возвращает имя режима доставки (используется в логах и метриках)
func (m DeliveryMode) String() string {
	if m == DeliveryModeEdit {
		return "edit"
	}
	return "send"
}

// Button представляет inline-кнопку: либо ссылку, либо callback
type Button struct {
	Text         string
	URL          string // Кнопка-ссылка
	CallbackData string // Кнопка с callback
}

// IsLink проверяет, является ли кнопка ссылкой
func (b Button) IsLink() bool {
	return b.URL != ""
}

// Keyboard описание inline-клавиатуры: упорядоченные строки кнопок
type Keyboard struct {
	Rows [][]Button
}

// IsEmpty проверяет, есть ли в клавиатуре кнопки
func (k *Keyboard) IsEmpty() bool {
	if k == nil {
		return true
	}
	for _, row := range k.Rows {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// Response ответ обработчика: текст, опциональная клавиатура и режим доставки
type Response struct {
	Text      string
	Keyboard  *Keyboard
	Mode      DeliveryMode
	ParseMode string
}

// HasKeyboard проверяет, нужно ли прикреплять клавиатуру
func (r Response) HasKeyboard() bool {
	return !r.Keyboard.IsEmpty()
}

// Target адрес доставки ответа
type Target struct {
	ChatID          int64
	MessageID       int    // Для DeliveryModeEdit
	CallbackQueryID string // Если задан - callback будет подтверждён перед редактированием
}
