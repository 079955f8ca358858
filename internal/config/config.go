package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML-файла
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Database     DatabaseConfig     `toml:"database"`
	Calendar     CalendarConfig     `toml:"calendar"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP-сервера
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

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CalendarConfig настройки внешнего источника календаря
// mode = "service" - JSON calendar service, mode = "ics" - ICS-фид
type CalendarConfig struct {
	Mode    string `toml:"mode"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// AvailabilityConfig дефолтные параметры движка доступности
// Подставляются на границе вызова, если запрос их не переопределяет
type AvailabilityConfig struct {
	TemplateFile               string `toml:"template_file"`
	TimeZone                   string `toml:"time_zone"`
	AppointmentIntervalMinutes int    `toml:"appointment_interval_minutes"`
	PaddingMinutes             int    `toml:"padding_minutes"`
	LeadTimeMinutes            int    `toml:"lead_time_minutes"`
	MaxMinutesAhead            int    `toml:"max_minutes_ahead"`
	MaxMinutesBefore           int    `toml:"max_minutes_before"`
	Durations                  []int  `toml:"durations"`
}

// Load загружает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет дефолтные значения для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "availability-service"
	}
	if c.Calendar.Timeout == 0 {
		c.Calendar.Timeout = 5
	}
	if c.Availability.AppointmentIntervalMinutes == 0 {
		c.Availability.AppointmentIntervalMinutes = domain.DefaultAppointmentIntervalMinutes
	}
	if c.Availability.LeadTimeMinutes == 0 {
		c.Availability.LeadTimeMinutes = domain.DefaultLeadTimeMinutes
	}
	if c.Availability.MaxMinutesAhead == 0 {
		c.Availability.MaxMinutesAhead = domain.DefaultMaxMinutesAhead
	}
	if c.Availability.MaxMinutesBefore == 0 {
		c.Availability.MaxMinutesBefore = domain.DefaultMaxMinutesBefore
	}
	if len(c.Availability.Durations) == 0 {
		c.Availability.Durations = append([]int(nil), domain.DefaultDurations...)
	}
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Calendar.Mode != "service" && c.Calendar.Mode != "ics" {
		return fmt.Errorf("config: calendar.mode must be \"service\" or \"ics\", got %q", c.Calendar.Mode)
	}
	if c.Calendar.URL == "" {
		return fmt.Errorf("config: calendar.url is required")
	}
	if c.Availability.TemplateFile == "" {
		return fmt.Errorf("config: availability.template_file is required")
	}
	if c.Availability.AppointmentIntervalMinutes < 0 {
		return fmt.Errorf("config: availability.appointment_interval_minutes must be non-negative")
	}
	if c.Availability.PaddingMinutes < 0 {
		return fmt.Errorf("config: availability.padding_minutes must be non-negative")
	}
	if c.Availability.LeadTimeMinutes < 0 {
		return fmt.Errorf("config: availability.lead_time_minutes must be non-negative")
	}
	return nil
}
