package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/yetal-bot/internal/app"
	"github.com/m04kA/yetal-bot/internal/config"
	"github.com/m04kA/yetal-bot/internal/service/telegram"
	"github.com/m04kA/yetal-bot/internal/worker"
	"github.com/m04kA/yetal-bot/pkg/logger"
	"github.com/m04kA/yetal-bot/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Yetal Bot v%s", config.Version)
	log.Info("Time: %s", time.Now().Format(time.RFC3339))
	log.Info("Mode: %s", cfg.Telegram.Mode.Label())

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		metricsHandler   http.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		metricsCollector = metrics.New(cfg.Metrics.ServiceName, reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем Telegram Bot API.
	// getUpdates получает дополнительно poll timeout, остальные вызовы ограничены request timeout.
	httpClient := telegram.NewHTTPClient(
		time.Duration(cfg.Telegram.RequestTimeout)*time.Second,
		time.Duration(cfg.Telegram.PollTimeout)*time.Second,
	)
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Telegram.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		log.Fatal("Failed to initialize Telegram Bot API: %v", err)
	}

	rt, err := app.New(cfg, bot, log, metricsCollector)
	if err != nil {
		log.Fatal("Failed to initialize application: %v", err)
	}

	if _, err := rt.SetupDelivery(); err != nil {
		log.Fatal("Failed to set up Telegram updates: %v", err)
	}

	// Создаём контекст с возможностью отмены для управления жизненным циклом горутин
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	var (
		wg      sync.WaitGroup
		monitor *worker.WebhookMonitor
	)

	if cfg.IsProduction() {
		monitor = rt.NewWebhookMonitor()
		if monitor != nil {
			if err := monitor.Start(); err != nil {
				log.Error("Failed to start webhook monitor: %v", err)
				monitor = nil
			} else {
				log.Info("Webhook monitor started (interval=%ds)", cfg.Monitor.WebhookCheckInterval)
			}
		}
	} else {
		pollingHandler := rt.NewPollingHandler()
		updatesChan := rt.Telegram.GetUpdatesChan(cfg.Telegram.PollTimeout)

		wg.Add(1)
		go func() {
			defer wg.Done()
			pollingHandler.Start(ctx, updatesChan)
		}()
		log.Info("Telegram long polling started")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      rt.HTTPHandler(metricsHandler),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем HTTP сервер
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	// Сначала останавливаем приём обновлений, затем сервер
	cancelCtx()
	if !cfg.IsProduction() {
		rt.Telegram.StopReceivingUpdates()
	}
	wg.Wait()

	if monitor != nil {
		monitor.Stop()
	}

	// Graceful shutdown HTTP сервера
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Bot stopped gracefully")
}
