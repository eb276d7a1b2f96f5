package keyboard

import (
	"github.com/m04kA/yetal-bot/internal/catalog"
	"github.com/m04kA/yetal-bot/internal/domain"
)

// Labels тексты кнопок
type Labels struct {
	Subscribe string
	Contact   string
	Back      string
}

// LabelsFromCatalog берёт тексты кнопок из каталога
func LabelsFromCatalog(c *catalog.Catalog) Labels {
	return Labels{
		Subscribe: c.Render(catalog.KeyButtonSubscribe, catalog.Params{}),
		Contact:   c.Render(catalog.KeyButtonContact, catalog.Params{}),
		Back:      c.Render(catalog.KeyButtonBack, catalog.Params{}),
	}
}

// Builder собирает inline-клавиатуры бота.
// Все входные данные фиксируются при создании.
type Builder struct {
	labels       Labels
	subscribeURL string
}

// NewBuilder создаёт построитель клавиатур
func NewBuilder(labels Labels, subscribeURL string) *Builder {
	return &Builder{
		labels:       labels,
		subscribeURL: subscribeURL,
	}
}

// MainMenu две строки: ссылка на подписку и кнопка контактов
func (b *Builder) MainMenu() *domain.Keyboard {
	return &domain.Keyboard{
		Rows: [][]domain.Button{
			{{Text: b.labels.Subscribe, URL: b.subscribeURL}},
			{{Text: b.labels.Contact, CallbackData: domain.CallbackContact}},
		},
	}
}

// BackButton одна кнопка возврата в главное меню
func (b *Builder) BackButton() *domain.Keyboard {
	return &domain.Keyboard{
		Rows: [][]domain.Button{
			{{Text: b.labels.Back, CallbackData: domain.CallbackMainMenu}},
		},
	}
}
