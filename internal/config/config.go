package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	WorkshopService WorkshopServiceConfig `toml:"workshop_service"`
	Calendar        CalendarConfig        `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// WorkshopServiceConfig настройки клиента WorkshopService (бэкенд мастерской)
type WorkshopServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// CalendarConfig настройки временной сетки календаря
type CalendarConfig struct {
	StartHour       int    `toml:"start_hour"`
	EndHour         int    `toml:"end_hour"`
	PixelsPerHour   int    `toml:"pixels_per_hour"`
	SnapStepMinutes int    `toml:"snap_step_minutes"`
	Timezone        string `toml:"timezone"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8084,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			File:  "logs/calendar-service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "calendar-service",
		},
		WorkshopService: WorkshopServiceConfig{
			Timeout: 5,
		},
		Calendar: CalendarConfig{
			StartHour:       7,
			EndHour:         18,
			PixelsPerHour:   52,
			SnapStepMinutes: 15,
			Timezone:        "Europe/Stockholm",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in (0, 65535]", ErrInvalidConfig)
	}
	if c.WorkshopService.URL == "" {
		return fmt.Errorf("%w: workshop_service.url is required", ErrInvalidConfig)
	}
	if c.WorkshopService.Timeout <= 0 {
		return fmt.Errorf("%w: workshop_service.timeout must be positive", ErrInvalidConfig)
	}
	if c.Calendar.StartHour < 0 || c.Calendar.StartHour > 23 {
		return fmt.Errorf("%w: calendar.start_hour must be in [0, 23]", ErrInvalidConfig)
	}
	if c.Calendar.EndHour <= c.Calendar.StartHour || c.Calendar.EndHour > 24 {
		return fmt.Errorf("%w: calendar.end_hour must be in (start_hour, 24]", ErrInvalidConfig)
	}
	if c.Calendar.PixelsPerHour <= 0 {
		return fmt.Errorf("%w: calendar.pixels_per_hour must be positive", ErrInvalidConfig)
	}
	if c.Calendar.SnapStepMinutes <= 0 || 60%c.Calendar.SnapStepMinutes != 0 {
		return fmt.Errorf("%w: calendar.snap_step_minutes must be positive and divide 60", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
