package mocks

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/mock"
)

// BotAPI мок telegram.BotAPI на testify/mock
type BotAPI struct {
	mock.Mock
}

// NewBotAPI создаёт мок и проверяет ожидания по завершении теста
func NewBotAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *BotAPI {
	m := &BotAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *BotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	msg, _ := args.Get(0).(tgbotapi.Message)
	return msg, args.Error(1)
}

func (m *BotAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	args := m.Called(c)
	resp, _ := args.Get(0).(*tgbotapi.APIResponse)
	return resp, args.Error(1)
}

func (m *BotAPI) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	args := m.Called(config)
	ch, _ := args.Get(0).(tgbotapi.UpdatesChannel)
	return ch
}

func (m *BotAPI) StopReceivingUpdates() {
	m.Called()
}

func (m *BotAPI) GetMe() (tgbotapi.User, error) {
	args := m.Called()
	user, _ := args.Get(0).(tgbotapi.User)
	return user, args.Error(1)
}

func (m *BotAPI) GetWebhookInfo() (tgbotapi.WebhookInfo, error) {
	args := m.Called()
	info, _ := args.Get(0).(tgbotapi.WebhookInfo)
	return info, args.Error(1)
}
