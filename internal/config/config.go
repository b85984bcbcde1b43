package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Schedule     ScheduleConfig     `toml:"schedule"`
	Payments     PaymentsConfig     `toml:"payments"`
	CalendarSync CalendarSyncConfig `toml:"calendar_sync"`
	Notifier     NotifierConfig     `toml:"notifier"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig настройки недельной сетки доступности и подбора слотов
type ScheduleConfig struct {
	HourStart            int `toml:"hour_start"`             // начало рабочего окна (включительно)
	HourEnd              int `toml:"hour_end"`               // конец рабочего окна (не включительно)
	SuggestionWindowDays int `toml:"suggestion_window_days"` // горизонт подбора слотов
}

// PaymentsConfig настройки приёма событий платёжного процессора
type PaymentsConfig struct {
	WebhookSecret string `toml:"webhook_secret"`
}

// CalendarSyncConfig настройки клиента внешнего календаря
type CalendarSyncConfig struct {
	Enabled     bool   `toml:"enabled"`
	URL         string `toml:"url"`
	Timeout     int    `toml:"timeout"` // секунды
	EventTypeID string `toml:"event_type_id"`
}

// NotifierConfig настройки клиента сервиса уведомлений
type NotifierConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "tsb-scheduling-service"
	}
	if cfg.Schedule.HourStart == 0 && cfg.Schedule.HourEnd == 0 {
		cfg.Schedule.HourStart = 8
		cfg.Schedule.HourEnd = 20
	}
	if cfg.Schedule.SuggestionWindowDays == 0 {
		cfg.Schedule.SuggestionWindowDays = 14
	}
	if cfg.CalendarSync.Timeout == 0 {
		cfg.CalendarSync.Timeout = 5
	}
	if cfg.Notifier.Timeout == 0 {
		cfg.Notifier.Timeout = 5
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Schedule.HourStart < 0 || cfg.Schedule.HourEnd > 24 || cfg.Schedule.HourStart >= cfg.Schedule.HourEnd {
		return fmt.Errorf("config: invalid schedule window [%d, %d)", cfg.Schedule.HourStart, cfg.Schedule.HourEnd)
	}
	if cfg.Payments.WebhookSecret == "" {
		return fmt.Errorf("config: payments.webhook_secret is required")
	}
	if cfg.CalendarSync.Enabled && cfg.CalendarSync.URL == "" {
		return fmt.Errorf("config: calendar_sync.url is required when calendar_sync is enabled")
	}
	if cfg.Notifier.Enabled && cfg.Notifier.URL == "" {
		return fmt.Errorf("config: notifier.url is required when notifier is enabled")
	}
	return nil
}
