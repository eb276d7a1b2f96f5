package menu

import (
	"context"

	"github.com/m04kA/yetal-bot/internal/catalog"
	"github.com/m04kA/yetal-bot/internal/domain"
)

// Команды бота
const (
	CommandStart   = "start"
	CommandAbout   = "about"
	CommandContact = "contact"
	CommandHelp    = "help"
)

// UseCase обработчики команд и кнопок главного меню.
// Не хранит состояния: каждый ответ строится из каталога и клавиатур.
type UseCase struct {
	catalog   Catalog
	keyboards Keyboards
	params    catalog.Params
	logger    Logger
}

// New создаёт use case меню
func New(c Catalog, keyboards Keyboards, params catalog.Params, logger Logger) *UseCase {
	return &UseCase{
		catalog:   c,
		keyboards: keyboards,
		params:    params,
		logger:    logger,
	}
}

// Register регистрирует все обработчики в роутере
func (uc *UseCase) Register(r Registrar) {
	r.HandleCommand(CommandStart, uc.Start)
	r.HandleCommand(CommandAbout, uc.About)
	r.HandleCommand(CommandContact, uc.Contact)
	r.HandleCommand(CommandHelp, uc.Help)

	r.HandleCallback(domain.CallbackContact, uc.ContactCallback)
	r.HandleCallback(domain.CallbackMainMenu, uc.MainMenuCallback)

	r.Fallback(uc.Unknown)
}

// Start приветствие с главным меню
func (uc *UseCase) Start(ctx context.Context, update domain.Update) (domain.Response, error) {
	uc.logger.Info("User %d started the bot", update.UserID)
	return uc.reply(catalog.KeyWelcome, uc.keyboards.MainMenu(), domain.DeliveryModeSend), nil
}

// About описание платформы
func (uc *UseCase) About(ctx context.Context, update domain.Update) (domain.Response, error) {
	return uc.reply(catalog.KeyAbout, nil, domain.DeliveryModeSend), nil
}

// Contact контактные данные
func (uc *UseCase) Contact(ctx context.Context, update domain.Update) (domain.Response, error) {
	return uc.reply(catalog.KeyContact, nil, domain.DeliveryModeSend), nil
}

// Help список команд
func (uc *UseCase) Help(ctx context.Context, update domain.Update) (domain.Response, error) {
	return uc.reply(catalog.KeyHelp, nil, domain.DeliveryModeSend), nil
}

// Unknown ответ на незарегистрированную команду
func (uc *UseCase) Unknown(ctx context.Context, update domain.Update) (domain.Response, error) {
	return uc.reply(catalog.KeyUnknownCommand, nil, domain.DeliveryModeSend), nil
}

// ContactCallback заменяет сообщение контактами с кнопкой "назад"
func (uc *UseCase) ContactCallback(ctx context.Context, update domain.Update) (domain.Response, error) {
	return uc.reply(catalog.KeyContact, uc.keyboards.BackButton(), domain.DeliveryModeEdit), nil
}

// MainMenuCallback возвращает сообщение к приветствию с главным меню
func (uc *UseCase) MainMenuCallback(ctx context.Context, update domain.Update) (domain.Response, error) {
	return uc.reply(catalog.KeyWelcome, uc.keyboards.MainMenu(), domain.DeliveryModeEdit), nil
}

func (uc *UseCase) reply(key catalog.Key, keyboard *domain.Keyboard, mode domain.DeliveryMode) domain.Response {
	return domain.Response{
		Text:      uc.catalog.Render(key, uc.params),
		Keyboard:  keyboard,
		Mode:      mode,
		ParseMode: domain.ParseModeMarkdown,
	}
}
