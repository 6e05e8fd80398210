package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	LeadStore string `envconfig:"LEAD_STORE" default:"postgres"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	RedisAddr   string `envconfig:"REDIS_ADDR"`

	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`

	RabbitUser string `envconfig:"RABBITMQ_USER" default:"guest"`
	RabbitPass string `envconfig:"RABBITMQ_PASS" default:"guest"`
	RabbitHost string `envconfig:"RABBITMQ_HOST"`
	RabbitPort string `envconfig:"RABBITMQ_PORT" default:"5672"`

	MailHost   string `envconfig:"MAIL_HOST"`
	MailPort   int    `envconfig:"MAIL_PORT" default:"587"`
	MailUser   string `envconfig:"MAIL_USER"`
	MailPass   string `envconfig:"MAIL_PASS"`
	MailFrom   string `envconfig:"MAIL_FROM" default:"no-reply@mehrsasharoleslam.com"`
	SalesEmail string `envconfig:"SALES_EMAIL" default:"mehrsasharoleslam@gmail.com"`

	BookingURL   string `envconfig:"BOOKING_URL" default:"https://calendly.com/mehrsasharoleslam"`
	WebsiteURL   string `envconfig:"WEBSITE_URL" default:"https://mehrsasharoleslam.com"`
	InstagramURL string `envconfig:"INSTAGRAM_URL" default:"https://www.instagram.com/mehrsasharoleslam"`
	YouTubeURL   string `envconfig:"YOUTUBE_URL" default:"https://www.youtube.com/@mehrsasharoleslam"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

// Load reads .env (when present) and the environment into a validated Config.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalize(cfg *Config) error {
	store := strings.ToLower(strings.TrimSpace(cfg.LeadStore))
	switch store {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when LEAD_STORE is 'postgres'")
		}
	case StoreRedis:
		if cfg.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when LEAD_STORE is 'redis'")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("invalid LEAD_STORE %q; allowed: postgres, redis, memory", cfg.LeadStore)
	}
	cfg.LeadStore = store

	return nil
}

// QueueEnabled reports whether lead notifications should be wired.
func (c *Config) QueueEnabled() bool {
	return c.RabbitHost != ""
}
