package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// timeRe проверяет время в формате HH:MM
var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// Config - вся конфигурация процесса, читается из окружения
type Config struct {
	TelegramToken string
	ChatID        int64 // единственный чат, куда бот пишет и откуда принимает команды

	DatabaseURL  string // PostgreSQL
	DatabasePath string // SQLite

	MorningTime string // анонс меню на сегодня
	EveningTime string // анонс меню на завтра
	Timezone    string // таймзона аудитории, не сервера

	AdminAddr string
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadAdmin читает конфигурацию админки. Админка в Telegram не ходит,
// поэтому токен и чат не обязательны.
func LoadAdmin() (*Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateAdmin(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DatabasePath:  os.Getenv("DATABASE_PATH"),
		MorningTime:   envOr("MORNING_TIME", "07:30"),
		EveningTime:   envOr("EVENING_TIME", "20:00"),
		Timezone:      envOr("TZ_NAME", "Europe/Moscow"),
		AdminAddr:     envOr("ADMIN_ADDR", ":8080"),
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.ChatID = chatID
	}

	return cfg, nil
}

// Validate проверяет конфигурацию бота и сервисных команд
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TelegramToken, validation.Required),
		validation.Field(&c.ChatID, validation.Required),
		validation.Field(&c.MorningTime, validation.Required, validation.Match(timeRe)),
		validation.Field(&c.EveningTime, validation.Required, validation.Match(timeRe)),
		validation.Field(&c.Timezone, validation.Required, validation.By(validTimezone)),
		validation.Field(&c.DatabaseURL, validation.Required.When(c.DatabasePath == "").Error("either DATABASE_URL or DATABASE_PATH must be set")),
	)
}

// ValidateAdmin проверяет часть конфигурации, нужную админке
func (c *Config) ValidateAdmin() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AdminAddr, validation.Required),
		validation.Field(&c.DatabaseURL, validation.Required.When(c.DatabasePath == "").Error("either DATABASE_URL or DATABASE_PATH must be set")),
	)
}

// Location возвращает таймзону расписаний
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func validTimezone(value interface{}) error {
	name, _ := value.(string)
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone %q", name)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
