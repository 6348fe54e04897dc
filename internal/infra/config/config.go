package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"homework_status_bot/internal/infra/practicum"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	defaultRetryTime = 1500 // seconds
	defaultTimeout   = 30 * time.Second
)

var ErrMissingRequired = errors.New("required environment variables are not set")

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken     string
	TelegramChatID    int64
	PracticumToken    string
	PracticumEndpoint string
	RetryTime         time.Duration
	ScheduleSpec      string // Overrides RetryTime when set
	RequestTimeout    time.Duration
	LogLevel          string
	Environment       string
	MetricsAddr       string // Empty disables the metrics server
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
	}
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")

	var missing []string
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	var err error
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = practicum.DefaultEndpoint
	}

	cfg.RetryTime = defaultRetryTime * time.Second
	if v := os.Getenv("RETRY_TIME"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid RETRY_TIME %q: must be a positive number of seconds", v)
		}
		cfg.RetryTime = time.Duration(secs) * time.Second
	}

	cfg.ScheduleSpec = strings.TrimSpace(os.Getenv("POLL_SCHEDULE"))
	if cfg.ScheduleSpec != "" {
		if _, err := cron.ParseStandard(cfg.ScheduleSpec); err != nil {
			return nil, fmt.Errorf("invalid POLL_SCHEDULE: %w", err)
		}
	}

	cfg.RequestTimeout = defaultTimeout
	if v := os.Getenv("PRACTICUM_TIMEOUT"); v != "" {
		cfg.RequestTimeout, err = time.ParseDuration(v)
		if err != nil || cfg.RequestTimeout <= 0 {
			return nil, fmt.Errorf("invalid PRACTICUM_TIMEOUT %q", v)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.MetricsAddr = os.Getenv("METRICS_ADDR")

	return cfg, nil
}

// PollSchedule returns the schedule between poll iterations.
func (c *AppConfig) PollSchedule() (cron.Schedule, error) {
	if c.ScheduleSpec != "" {
		return cron.ParseStandard(c.ScheduleSpec)
	}
	return cron.Every(c.RetryTime), nil
}
