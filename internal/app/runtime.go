package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/yetal-bot/internal/api"
	"github.com/m04kA/yetal-bot/internal/api/handlers/health"
	"github.com/m04kA/yetal-bot/internal/api/handlers/status_page"
	"github.com/m04kA/yetal-bot/internal/api/handlers/telegram_webhook"
	"github.com/m04kA/yetal-bot/internal/api/middleware"
	"github.com/m04kA/yetal-bot/internal/catalog"
	"github.com/m04kA/yetal-bot/internal/config"
	"github.com/m04kA/yetal-bot/internal/keyboard"
	"github.com/m04kA/yetal-bot/internal/service/telegram"
	"github.com/m04kA/yetal-bot/internal/usecase/menu"
	"github.com/m04kA/yetal-bot/internal/usecase/router"
	"github.com/m04kA/yetal-bot/internal/worker"
	"github.com/m04kA/yetal-bot/pkg/metrics"
)

// Runtime контекст приложения: конфигурация, клиент Telegram и роутер.
// Создаётся один раз при старте. После SetupDelivery не изменяется
// и передаётся HTTP поверхности и polling воркеру.
type Runtime struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Telegram *telegram.Service
	Router   *router.Router

	logger  Logger
	metrics *metrics.Metrics
	decoder *telegram.Decoder
}

// New собирает runtime: каталог, клавиатуры, обработчики меню и роутер.
// m может быть nil, если метрики выключены.
func New(cfg *config.Config, bot telegram.BotAPI, logger Logger, m *metrics.Metrics) (*Runtime, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalog, err)
	}

	// Интерфейсы получают nil только явно, чтобы не попасть на typed nil
	var (
		deliveryMetrics telegram.Metrics
		routerMetrics   router.Metrics
	)
	if m != nil {
		deliveryMetrics = m
		routerMetrics = m
	}

	tg := telegram.NewService(bot, logger, deliveryMetrics)

	params := catalog.Params{
		Email:           cfg.Contacts.Email,
		Website:         cfg.Contacts.WebsiteURL,
		RegistrationURL: cfg.Contacts.RegistrationBotURL,
	}
	keyboards := keyboard.NewBuilder(keyboard.LabelsFromCatalog(cat), cfg.Contacts.WebsiteURL)

	r := router.New(tg, cat.Render(catalog.KeyErrorGeneric, params), logger, routerMetrics)
	menu.New(cat, keyboards, params, logger).Register(r)

	if m != nil {
		m.SetBuildInfo(config.Version, string(cfg.Telegram.Mode))
	}

	return &Runtime{
		Config:   cfg,
		Catalog:  cat,
		Telegram: tg,
		Router:   r,
		logger:   logger,
		metrics:  m,
		decoder:  telegram.NewDecoder(""),
	}, nil
}

// SetupDelivery удаляет webhook, в режиме webhook регистрирует его заново
// и возвращает username бота. Любая ошибка фатальна для запуска.
// Должен вызываться до HTTPHandler и NewPollingHandler.
func (rt *Runtime) SetupDelivery() (string, error) {
	// Удаление идемпотентно, поэтому выполняется всегда
	if err := rt.Telegram.DeleteWebhook(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliverySetup, err)
	}

	if rt.Config.IsProduction() {
		if err := rt.Telegram.SetWebhook(rt.Config.WebhookURL()); err != nil {
			return "", fmt.Errorf("%w: %v", ErrDeliverySetup, err)
		}
		rt.logger.Info("Webhook set to: %s/<bot_token>", rt.Config.Telegram.ExternalURL)
	}

	username, err := rt.Telegram.Identity()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliverySetup, err)
	}

	// Команды с суффиксом другого бота уходят в fallback
	rt.decoder = telegram.NewDecoder(username)

	rt.logger.Info("Bot @%s initialized successfully", username)
	rt.logger.Info("Mode: %s", rt.Config.Telegram.Mode.Label())

	return username, nil
}

// HTTPHandler собирает HTTP поверхность. metricsHandler nil - без /metrics.
func (rt *Runtime) HTTPHandler(metricsHandler http.Handler) http.Handler {
	cfg := rt.Config

	var (
		httpMetrics    middleware.Metrics
		webhookMetrics telegram_webhook.Metrics
	)
	if rt.metrics != nil {
		httpMetrics = rt.metrics
		webhookMetrics = rt.metrics
	}

	webhook := telegram_webhook.NewHandler(
		rt.Router,
		rt.decoder,
		cfg.Telegram.Mode,
		rt.Catalog.Render(catalog.KeyWebhookLocalMode, catalog.Params{}),
		rt.logger,
		webhookMetrics,
	)

	return api.NewRouter(
		api.Paths{Webhook: cfg.WebhookPath(), Metrics: cfg.Metrics.Path},
		api.Handlers{
			Status:  status_page.NewHandler(config.Version, cfg.Telegram.Mode, cfg.Contacts.Email).Handle,
			Health:  health.NewHandler(config.Version, cfg.Telegram.Mode, nil).Handle,
			Webhook: webhook.Handle,
			Metrics: metricsHandler,
		},
		rt.logger,
		httpMetrics,
	)
}

// NewPollingHandler создаёт long polling воркер поверх роутера
func (rt *Runtime) NewPollingHandler() *worker.PollingHandler {
	var m worker.Metrics
	if rt.metrics != nil {
		m = rt.metrics
	}
	return worker.NewPollingHandler(rt.Router, rt.decoder, rt.logger, m)
}

// NewWebhookMonitor создаёт монитор webhook. nil - проверка выключена.
func (rt *Runtime) NewWebhookMonitor() *worker.WebhookMonitor {
	interval := rt.Config.Monitor.WebhookCheckInterval
	if !rt.Config.IsProduction() || interval <= 0 {
		return nil
	}

	var m worker.Metrics
	if rt.metrics != nil {
		m = rt.metrics
	}
	return worker.NewWebhookMonitor(rt.Telegram, rt.Config.WebhookURL(), time.Duration(interval)*time.Second, rt.logger, m)
}
