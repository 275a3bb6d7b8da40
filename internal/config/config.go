package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string        `validate:"required,numeric"`
	AppEnv           string        `validate:"oneof=development production test"`
	StaticDir        string        `validate:"required"`
	SessionTTL       time.Duration `validate:"gte=1m"`
	CarouselViewport int           `validate:"gte=320"`
	FeaturedLimit    int           `validate:"gte=1,lte=50"`
	RateLimitRPS     float64       `validate:"gt=0"`
	RateLimitBurst   int           `validate:"gte=1"`
}

var validate = validator.New()

// LoadConfig reads .env (when present) and the process environment.
// Unset values fall back to defaults; invalid values are reported as an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		AppEnv:           getEnv("APP_ENV", "development"),
		StaticDir:        getEnv("STATIC_DIR", "./public"),
		SessionTTL:       24 * time.Hour,
		CarouselViewport: 1200,
		FeaturedLimit:    8,
		RateLimitRPS:     10,
		RateLimitBurst:   20,
	}

	var err error
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if cfg.SessionTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
	}
	if cfg.CarouselViewport, err = getInt("CAROUSEL_VIEWPORT", cfg.CarouselViewport); err != nil {
		return nil, err
	}
	if cfg.FeaturedLimit, err = getInt("FEATURED_LIMIT", cfg.FeaturedLimit); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
