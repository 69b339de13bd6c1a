package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds everything the app reads from the environment at startup.
// A missing FEED_URL is a startup failure, never a per-request one.
type Config struct {
	Env  string
	Addr string

	FeedURL     string `validate:"required,url"`
	FeedTimeout time.Duration

	CookieSecret string `validate:"required,min=16"`

	MailerDriver string `validate:"oneof=mock smtp"`
	ContactTo    string `validate:"omitempty,email"`
	SMTP         SMTPConfig
}

type SMTPConfig struct {
	Host          string
	Port          string
	Username      string
	Password      string
	From          string
	FromName      string
	TLSMode       string // "", "starttls" or "tls"
	SkipVerifyTLS bool
}

const defaultFeedTimeout = 15 * time.Second

func Load() (*Config, error) {
	cfg := &Config{
		Env:          envOr("APP_ENV", "development"),
		Addr:         envOr("HTTP_ADDR", ":8080"),
		FeedURL:      strings.TrimSpace(os.Getenv("FEED_URL")),
		FeedTimeout:  defaultFeedTimeout,
		CookieSecret: envOr("COOKIE_SECRET", "dev-secret-change-me-32chars!!"),
		MailerDriver: envOr("MAILER_DRIVER", "mock"),
		ContactTo:    os.Getenv("CONTACT_TO"),
		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          envOr("SMTP_PORT", "587"),
			Username:      os.Getenv("SMTP_USERNAME"),
			Password:      os.Getenv("SMTP_PASSWORD"),
			From:          envOr("SMTP_FROM", "no-reply@nivaaran.local"),
			FromName:      envOr("SMTP_FROM_NAME", "Nivaaran"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: boolEnv("SMTP_SKIP_VERIFY_TLS"),
		},
	}

	if v := os.Getenv("FEED_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.FeedTimeout = time.Duration(secs) * time.Second
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		var ve validator.ValidationErrors
		if ok := asValidationErrors(err, &ve); ok && len(ve) > 0 {
			fe := ve[0]
			return nil, fmt.Errorf("config: %s is %s (set the matching environment variable)", envName(fe.StructField()), fe.Tag())
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolEnv(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

// envName maps a struct field back to the env var it came from, for
// actionable startup errors.
func envName(field string) string {
	switch field {
	case "FeedURL":
		return "FEED_URL"
	case "CookieSecret":
		return "COOKIE_SECRET"
	case "MailerDriver":
		return "MAILER_DRIVER"
	case "ContactTo":
		return "CONTACT_TO"
	default:
		return strings.ToUpper(field)
	}
}
