package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultStoragePath = "~/.urlshort/db.json"
	DefaultCodeLength  = 6
	DefaultMaxAttempts = 100
)

// RetryConfig содержит настройки повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS" envDefault:"100"`
}

// Config содержит настройки утилиты
type Config struct {
	StoragePath   StoragePath   `env:"URLSHORT_DB" envDefault:"~/.urlshort/db.json"`
	StorageDriver StorageDriver `env:"URLSHORT_STORAGE" envDefault:"json"`
	CodeLength    int           `env:"URLSHORT_CODE_LENGTH" envDefault:"6"`
	Retry         RetryConfig   `envPrefix:"URLSHORT_RETRY_"`
	LogLevel      zapcore.Level `env:"URLSHORT_LOG_LEVEL" envDefault:"warn"`
	// Browser заменяет программу открытия URL по умолчанию
	Browser string `env:"URLSHORT_BROWSER"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	path := StoragePath(DefaultStoragePath)
	if expanded, err := expandHome(DefaultStoragePath); err == nil {
		path = StoragePath(expanded)
	}

	return &Config{
		StoragePath:   path,
		StorageDriver: DriverJSON,
		CodeLength:    DefaultCodeLength,
		Retry: RetryConfig{
			MaxAttempts: DefaultMaxAttempts,
		},
		LogLevel: zapcore.WarnLevel,
	}
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, которые env не может проверить сам
func (c *Config) Validate() error {
	if c.CodeLength <= 0 {
		return fmt.Errorf("invalid code length: %d", c.CodeLength)
	}

	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("invalid retry max attempts: %d", c.Retry.MaxAttempts)
	}

	return nil
}
