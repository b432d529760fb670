package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"plate-sentry/internal/domain/entity"
)

// Config настройки процесса
type Config struct {
	ModelPath      string `mapstructure:"model_path"`
	CameraURL      string `mapstructure:"camera_url"`
	LineToken      string `mapstructure:"line_token"`
	TelegramToken  string `mapstructure:"telegram_token"`
	TelegramChatID string `mapstructure:"telegram_chat_id"`
	WhitelistPath  string `mapstructure:"whitelist_path"`
	DetectionsDir  string `mapstructure:"detections_dir"`
	Workers        int    `mapstructure:"workers"`
	LogLevel       string `mapstructure:"log_level"`
}

var configKeys = []string{
	"model_path",
	"camera_url",
	"line_token",
	"telegram_token",
	"telegram_chat_id",
	"whitelist_path",
	"detections_dir",
	"workers",
	"log_level",
}

// Load читает config.json и переменные окружения
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}

	v.SetDefault("detections_dir", "detections")
	v.SetDefault("workers", 2)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %v", entity.ErrConfiguration, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrConfiguration, err)
	}

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("%w: model_path is required", entity.ErrConfiguration)
	}
	if c.CameraURL == "" {
		return fmt.Errorf("%w: camera_url is required", entity.ErrConfiguration)
	}
	if c.WhitelistPath == "" {
		return fmt.Errorf("%w: whitelist_path is required", entity.ErrConfiguration)
	}
	return nil
}
