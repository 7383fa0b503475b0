package config

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

var (
	ErrConfigMissing = errors.New("отсутствуют обязательные переменные окружения")
	ErrConfigInvalid = errors.New("некорректные переменные окружения")
)

type Config struct {
	PracticumToken string        `env:"PRACTICUM_TOKEN,notEmpty"`
	TelegramToken  string        `env:"TELEGRAM_TOKEN,notEmpty"`
	ChatID         string        `env:"TELEGRAM_CHAT_ID,notEmpty"` // числовой id или @username канала
	Endpoint       string        `env:"PRACTICUM_ENDPOINT" envDefault:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	RetryTime      time.Duration `env:"RETRY_TIME" envDefault:"600s"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	Debug          bool          `env:"BOT_DEBUG" envDefault:"false"`
}

// Log настраивает файл журнала. Читается отдельно от Config, чтобы журнал
// был открыт до проверки токенов.
type Log struct {
	File    string `env:"LOG_FILE" envDefault:"program.log"`
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Console bool   `env:"LOG_CONSOLE" envDefault:"false"`
}

// LoadEnv подгружает .env файлы в окружение процесса. Отсутствие файла не ошибка.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
}

func ParseLog() (*Log, error) {
	cfg := &Log{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse log config: %w", err)
	}
	return cfg, nil
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigMissing, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые env-теги не покрывают.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: PRACTICUM_ENDPOINT is empty", ErrConfigMissing)
	}
	if !strings.HasPrefix(c.ChatID, "@") {
		if _, err := strconv.ParseInt(c.ChatID, 10, 64); err != nil {
			return fmt.Errorf("%w: TELEGRAM_CHAT_ID must be a number or @channel, got %q", ErrConfigInvalid, c.ChatID)
		}
	}
	if c.RetryTime < time.Second {
		return fmt.Errorf("%w: RETRY_TIME must be at least 1s, got %s", ErrConfigInvalid, c.RetryTime)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: HTTP_TIMEOUT must be positive", ErrConfigInvalid)
	}
	return nil
}

// AuthHeader возвращает значение заголовка Authorization для API Практикума.
func (c *Config) AuthHeader() string {
	return "OAuth " + c.PracticumToken
}
