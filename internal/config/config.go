package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Version версия приложения (показывается на статус-странице и в /health)
const Version = "2.0.0"

// Config представляет полную конфигурацию приложения.
// Загружается один раз при старте и после этого не изменяется.
type Config struct {
	Logs     LogsConfig     `toml:"logs"`
	Server   ServerConfig   `toml:"server"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Telegram TelegramConfig `toml:"telegram"`
	Contacts ContactsConfig `toml:"contacts"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Monitor  MonitorConfig  `toml:"monitor"`
}

// LogsConfig содержит настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// MetricsConfig содержит настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TelegramConfig содержит настройки Telegram Bot
type TelegramConfig struct {
	BotToken       string `toml:"bot_token"`
	AdminCode      string `toml:"admin_code"`
	Mode           Mode   `toml:"mode"`         // webhook | polling, пусто - определяется по external_url
	ExternalURL    string `toml:"external_url"` // Публичный адрес сервиса (для webhook)
	RequestTimeout int    `toml:"request_timeout"`
	PollTimeout    int    `toml:"poll_timeout"`
}

// ContactsConfig содержит контактные данные и ссылки, подставляемые в сообщения
type ContactsConfig struct {
	Email              string `toml:"email"`
	WebsiteURL         string `toml:"website_url"`
	RegistrationBotURL string `toml:"registration_bot_url"`
}

// CatalogConfig содержит настройки каталога сообщений
type CatalogConfig struct {
	Path string `toml:"path"` // Опционально: YAML с переопределением текстов
}

// MonitorConfig содержит настройки проверки webhook
type MonitorConfig struct {
	WebhookCheckInterval int `toml:"webhook_check_interval"` // в секундах, 0 - выключено
}

// envOverrides переменные окружения, перекрывающие значения из файла.
// Имена совпадают с теми, что используются в деплое на Render.
type envOverrides struct {
	BotToken           string `env:"BOT_TOKEN"`
	AdminCode          string `env:"ADMIN_CODE"`
	RegistrationBotURL string `env:"REGISTRATION_BOT_URL"`
	ContactEmail       string `env:"CONTACT_EMAIL"`
	WebsiteURL         string `env:"WEBSITE_URL"`
	ExternalURL        string `env:"RENDER_EXTERNAL_URL"`
	Port               int    `env:"PORT"`
	Mode               string `env:"BOT_MODE"`
	LogLevel           string `env:"LOG_LEVEL"`
	LogFile            string `env:"LOG_FILE"`
	MetricsEnabled     *bool  `env:"METRICS_ENABLED"`
	CatalogPath        string `env:"CATALOG_PATH"`
}

// Load загружает конфигурацию из TOML файла с поддержкой переменных окружения.
// Отсутствие файла не является ошибкой: всё можно задать через окружение.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	if err := overrideFromEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// overrideFromEnv переопределяет значения из переменных окружения
func overrideFromEnv(cfg *Config) error {
	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("%w: %v", ErrEnv, err)
	}

	if e.BotToken != "" {
		cfg.Telegram.BotToken = e.BotToken
	}
	if e.AdminCode != "" {
		cfg.Telegram.AdminCode = e.AdminCode
	}
	if e.ExternalURL != "" {
		cfg.Telegram.ExternalURL = e.ExternalURL
	}
	if e.Mode != "" {
		cfg.Telegram.Mode = Mode(e.Mode)
	}

	if e.RegistrationBotURL != "" {
		cfg.Contacts.RegistrationBotURL = e.RegistrationBotURL
	}
	if e.ContactEmail != "" {
		cfg.Contacts.Email = e.ContactEmail
	}
	if e.WebsiteURL != "" {
		cfg.Contacts.WebsiteURL = e.WebsiteURL
	}

	if e.Port != 0 {
		cfg.Server.HTTPPort = e.Port
	}

	if e.LogLevel != "" {
		cfg.Logs.Level = e.LogLevel
	}
	if e.LogFile != "" {
		cfg.Logs.File = e.LogFile
	}

	if e.MetricsEnabled != nil {
		cfg.Metrics.Enabled = *e.MetricsEnabled
	}

	if e.CatalogPath != "" {
		cfg.Catalog.Path = e.CatalogPath
	}

	return nil
}

// validate проверяет корректность конфигурации и проставляет значения по умолчанию
func validate(cfg *Config) error {
	// Telegram validation
	if cfg.Telegram.BotToken == "" {
		return ErrMissingToken
	}
	if strings.ContainsAny(cfg.Telegram.BotToken, "/?#{} ") {
		return ErrInvalidToken
	}

	cfg.Telegram.ExternalURL = NormalizeURL(cfg.Telegram.ExternalURL)
	cfg.Telegram.Mode = Mode(strings.ToLower(strings.TrimSpace(string(cfg.Telegram.Mode))))

	switch cfg.Telegram.Mode {
	case "":
		// Как и раньше: наличие внешнего адреса означает production (webhook)
		if cfg.Telegram.ExternalURL != "" {
			cfg.Telegram.Mode = ModeWebhook
		} else {
			cfg.Telegram.Mode = ModePolling
		}
	case ModeWebhook, ModePolling:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Telegram.Mode)
	}

	if cfg.Telegram.Mode == ModeWebhook && cfg.Telegram.ExternalURL == "" {
		return ErrMissingExternalURL
	}

	if cfg.Telegram.RequestTimeout == 0 {
		cfg.Telegram.RequestTimeout = 15
	}
	if cfg.Telegram.PollTimeout == 0 {
		cfg.Telegram.PollTimeout = 60
	}

	// Server validation
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 5000
	}
	if cfg.Server.HTTPPort < 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("HTTP port must be between 1 and 65535")
	}

	if cfg.Telegram.ExternalURL == "" {
		cfg.Telegram.ExternalURL = fmt.Sprintf("http://localhost:%d", cfg.Server.HTTPPort)
	}

	// Contacts validation
	if cfg.Contacts.Email == "" {
		return ErrMissingContactEmail
	}
	if cfg.Contacts.WebsiteURL == "" {
		cfg.Contacts.WebsiteURL = "https://yetal.co"
	}
	cfg.Contacts.WebsiteURL = NormalizeURL(cfg.Contacts.WebsiteURL)
	cfg.Contacts.RegistrationBotURL = NormalizeURL(cfg.Contacts.RegistrationBotURL)

	// Logs validation
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "./logs/app.log"
	}

	// Set defaults for timeouts if not specified
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	// Metrics validation and defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "yetalbot"
	}

	if cfg.Monitor.WebhookCheckInterval < 0 {
		cfg.Monitor.WebhookCheckInterval = 0
	}

	return nil
}

// NormalizeURL приводит URL к виду со схемой: "t.me/bot" -> "https://t.me/bot"
func NormalizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

// WebhookPath путь webhook-эндпоинта, производный от токена бота
func (c *Config) WebhookPath() string {
	return "/" + c.Telegram.BotToken
}

// WebhookURL полный адрес, который регистрируется в Telegram
func (c *Config) WebhookURL() string {
	return strings.TrimRight(c.Telegram.ExternalURL, "/") + c.WebhookPath()
}

// IsProduction true в режиме webhook
func (c *Config) IsProduction() bool {
	return c.Telegram.Mode == ModeWebhook
}
