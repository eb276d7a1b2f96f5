package app

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m04kA/yetal-bot/internal/catalog"
	"github.com/m04kA/yetal-bot/internal/config"
	"github.com/m04kA/yetal-bot/internal/service/telegram/mocks"
	"github.com/m04kA/yetal-bot/pkg/logger"
	"github.com/m04kA/yetal-bot/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken    = "123456:TEST-token"
	testExternal = "https://bot.example.com"

	startBody = `{"update_id":1,"message":{"message_id":10,"from":{"id":7,"is_bot":false,"first_name":"A"},` +
		`"chat":{"id":100,"type":"private"},"date":1700000000,"text":"/start",` +
		`"entities":[{"type":"bot_command","offset":0,"length":6}]}}`
	otherBotBody = `{"update_id":2,"message":{"message_id":11,"from":{"id":7,"is_bot":false,"first_name":"A"},` +
		`"chat":{"id":-100,"type":"group"},"date":1700000000,"text":"/start@SomeOtherBot",` +
		`"entities":[{"type":"bot_command","offset":0,"length":19}]}}`
)

func testConfig(mode config.Mode) *config.Config {
	cfg := &config.Config{}
	cfg.Telegram.BotToken = testToken
	cfg.Telegram.Mode = mode
	cfg.Telegram.ExternalURL = testExternal
	cfg.Contacts.Email = "info@yetal.co"
	cfg.Contacts.WebsiteURL = "https://yetal.co"
	cfg.Contacts.RegistrationBotURL = "https://t.me/YetalRegistrationBot"
	cfg.Metrics.Path = "/metrics"
	cfg.Monitor.WebhookCheckInterval = 300
	return cfg
}

func isDeleteWebhook() interface{} {
	return mock.MatchedBy(func(c tgbotapi.DeleteWebhookConfig) bool { return !c.DropPendingUpdates })
}

func newRuntime(t *testing.T, mode config.Mode, bot *mocks.BotAPI, logs io.Writer, m *metrics.Metrics) *Runtime {
	t.Helper()

	rt, err := New(testConfig(mode), bot, logger.NewWithWriter(logs, "debug"), m)
	require.NoError(t, err)
	return rt
}

func TestNew_CatalogOverrideMissing(t *testing.T) {
	cfg := testConfig(config.ModePolling)
	cfg.Catalog.Path = "/nonexistent/messages.yaml"

	_, err := New(cfg, mocks.NewBotAPI(t), logger.Nop(), nil)

	assert.ErrorIs(t, err, ErrCatalog)
}

func TestSetupDelivery_Polling(t *testing.T) {
	bot := mocks.NewBotAPI(t)
	bot.On("Request", isDeleteWebhook()).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once()
	bot.On("GetMe").Return(tgbotapi.User{UserName: "YetalBot"}, nil).Once()

	var logs bytes.Buffer
	rt := newRuntime(t, config.ModePolling, bot, &logs, nil)

	username, err := rt.SetupDelivery()

	require.NoError(t, err)
	assert.Equal(t, "YetalBot", username)
	assert.Contains(t, logs.String(), "Bot @YetalBot initialized successfully")
	assert.Contains(t, logs.String(), "Mode: Polling")
}

func TestSetupDelivery_WebhookRegistersAfterDelete(t *testing.T) {
	bot := mocks.NewBotAPI(t)

	deleteCall := bot.On("Request", isDeleteWebhook()).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once()
	bot.On("Request", mock.MatchedBy(func(c tgbotapi.WebhookConfig) bool {
		return c.URL != nil && c.URL.String() == testExternal+"/"+testToken
	})).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once().NotBefore(deleteCall)
	bot.On("GetMe").Return(tgbotapi.User{UserName: "YetalBot"}, nil).Once()

	var logs bytes.Buffer
	rt := newRuntime(t, config.ModeWebhook, bot, &logs, nil)

	_, err := rt.SetupDelivery()

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Mode: Webhook")
	assert.NotContains(t, logs.String(), testToken)
}

func TestSetupDelivery_DeleteFailureIsFatal(t *testing.T) {
	bot := mocks.NewBotAPI(t)
	bot.On("Request", isDeleteWebhook()).Return(nil, errors.New("unauthorized")).Once()

	rt := newRuntime(t, config.ModeWebhook, bot, io.Discard, nil)

	_, err := rt.SetupDelivery()

	assert.ErrorIs(t, err, ErrDeliverySetup)
	bot.AssertNotCalled(t, "GetMe")
}

func TestSetupDelivery_SetWebhookFailure(t *testing.T) {
	bot := mocks.NewBotAPI(t)
	bot.On("Request", isDeleteWebhook()).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once()
	bot.On("Request", mock.AnythingOfType("tgbotapi.WebhookConfig")).Return(nil, errors.New("bad webhook")).Once()

	rt := newRuntime(t, config.ModeWebhook, bot, io.Discard, nil)

	_, err := rt.SetupDelivery()

	assert.ErrorIs(t, err, ErrDeliverySetup)
	bot.AssertNotCalled(t, "GetMe")
}

func TestHTTPHandler_LocalMode(t *testing.T) {
	rt := newRuntime(t, config.ModePolling, mocks.NewBotAPI(t), io.Discard, nil)
	h := rt.HTTPHandler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+testToken, strings.NewReader(startBody)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Webhook not available in local mode", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"local"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPHandler_WebhookDeliversAndRecordsMetrics(t *testing.T) {
	bot := mocks.NewBotAPI(t)
	bot.On("Send", mock.MatchedBy(func(c tgbotapi.MessageConfig) bool {
		return c.ChatID == 100 && c.ParseMode == tgbotapi.ModeMarkdown
	})).Return(tgbotapi.Message{}, nil).Once()

	reg := prometheus.NewRegistry()
	m := metrics.New("yetalbot", reg)

	var logs bytes.Buffer
	rt := newRuntime(t, config.ModeWebhook, bot, &logs, m)
	h := rt.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+testToken, strings.NewReader(startBody)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `yetalbot_http_requests_total{method="POST",route="webhook",status="200"} 1`)
	assert.Contains(t, body, `yetalbot_handler_invocations_total{handler="start"} 1`)
	assert.Contains(t, body, `yetalbot_build_info{mode="webhook",version="`+config.Version+`"} 1`)
	assert.NotContains(t, body, testToken)
	assert.NotContains(t, logs.String(), testToken)
}

func TestHTTPHandler_CommandForOtherBotAnsweredAsUnknown(t *testing.T) {
	bot := mocks.NewBotAPI(t)
	bot.On("Request", isDeleteWebhook()).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once()
	bot.On("Request", mock.AnythingOfType("tgbotapi.WebhookConfig")).Return(&tgbotapi.APIResponse{Ok: true}, nil).Once()
	bot.On("GetMe").Return(tgbotapi.User{UserName: "YetalBot"}, nil).Once()

	reg := prometheus.NewRegistry()
	rt := newRuntime(t, config.ModeWebhook, bot, io.Discard, metrics.New("yetalbot", reg))
	_, err := rt.SetupDelivery()
	require.NoError(t, err)

	unknownText := rt.Catalog.Render(catalog.KeyUnknownCommand, catalog.Params{
		Email:           rt.Config.Contacts.Email,
		Website:         rt.Config.Contacts.WebsiteURL,
		RegistrationURL: rt.Config.Contacts.RegistrationBotURL,
	})
	bot.On("Send", mock.MatchedBy(func(c tgbotapi.MessageConfig) bool {
		return c.ChatID == -100 && c.Text == unknownText
	})).Return(tgbotapi.Message{}, nil).Once()

	h := rt.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+testToken, strings.NewReader(otherBotBody)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `yetalbot_handler_invocations_total{handler="unknown"} 1`)
	assert.NotContains(t, rec.Body.String(), `handler="start"`)
}

func TestNewWebhookMonitor(t *testing.T) {
	polling := newRuntime(t, config.ModePolling, mocks.NewBotAPI(t), io.Discard, nil)
	assert.Nil(t, polling.NewWebhookMonitor())

	webhook := newRuntime(t, config.ModeWebhook, mocks.NewBotAPI(t), io.Discard, nil)
	assert.NotNil(t, webhook.NewWebhookMonitor())

	webhook.Config.Monitor.WebhookCheckInterval = 0
	assert.Nil(t, webhook.NewWebhookMonitor())
}
