package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`
	LogLevel    string `env:"LOG_LEVEL" default:"info"`
	LogFormat   string `env:"LOG_FORMAT" default:"text"`

	SlideInterval time.Duration `env:"SLIDE_INTERVAL" default:"5s"`

	MaxSlideFeedClients int `env:"MAX_SLIDE_FEED_CLIENTS" default:"1000"`

	NewsletterRatePerSecond float64 `env:"NEWSLETTER_RATE_PER_SECOND" default:"1"`
	NewsletterBurst         int     `env:"NEWSLETTER_BURST" default:"5"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL": cfg.DatabaseURL,
		"REDIS_URL":    cfg.RedisURL,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.SlideInterval < time.Second {
		return fmt.Errorf("SLIDE_INTERVAL must be at least 1s, got %s", cfg.SlideInterval)
	}
	if cfg.MaxSlideFeedClients < 1 {
		return fmt.Errorf("MAX_SLIDE_FEED_CLIENTS must be positive, got %d", cfg.MaxSlideFeedClients)
	}
	if cfg.NewsletterRatePerSecond <= 0 {
		return fmt.Errorf("NEWSLETTER_RATE_PER_SECOND must be positive, got %g", cfg.NewsletterRatePerSecond)
	}
	if cfg.NewsletterBurst < 1 {
		return fmt.Errorf("NEWSLETTER_BURST must be positive, got %d", cfg.NewsletterBurst)
	}

	return nil
}
