package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Auth     AuthConfig     `toml:"auth"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к Postgres
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

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// RedisConfig настройки очереди email-задач
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	QueueKey string `toml:"queue_key"`
}

// SMTPConfig настройки отправки почты
type SMTPConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	From            string `toml:"from"`
	Password        string `toml:"password"`
	RatePerMinute   int    `toml:"rate_per_minute"`   // лимит исходящих писем
	MaxRetries      int    `toml:"max_retries"`       // число повторов перед dead letter
	InitialDelaySec int    `toml:"initial_delay_sec"` // стартовая задержка повторов
}

// AuthConfig настройки выдачи JWT токенов персонала
type AuthConfig struct {
	JWTSecret      string `toml:"jwt_secret"`
	AccessTTLHours int    `toml:"access_ttl_hours"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig настройки CORS для фронтенда
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Redis.QueueKey == "" {
		cfg.Redis.QueueKey = "vms:mail:queue"
	}
	if cfg.SMTP.RatePerMinute == 0 {
		cfg.SMTP.RatePerMinute = 10
	}
	if cfg.SMTP.MaxRetries == 0 {
		cfg.SMTP.MaxRetries = 3
	}
	if cfg.Auth.AccessTTLHours == 0 {
		cfg.Auth.AccessTTLHours = 12
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.jwt_secret is required")
	}

	return &cfg, nil
}
