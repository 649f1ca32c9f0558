package config

import (
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":3003" validate:"required"`
	DatabasePath string        `env:"DATABASE_PATH" envDefault:"./newsvote.db" validate:"required"`
	UploadDir    string        `env:"UPLOAD_DIR" envDefault:"./uploads" validate:"required"`
	StaticDir    string        `env:"STATIC_DIR" envDefault:"./web/static" validate:"required"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Outbound mail relay. Credentials come from the environment, never from source.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM" validate:"omitempty,email"`
	MailTo       string `env:"MAIL_TO" validate:"omitempty,email"`

	// Standard cron expression for the tally digest mail. Empty disables it.
	DigestCron string `env:"DIGEST_CRON"`
}

// Load loads configuration from environment variables, with an optional .env file.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
