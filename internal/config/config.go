package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is read from config.yaml and overridden by environment variables of the same name
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT" validate:"required"`
	Port        string `mapstructure:"PORT" validate:"required"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFile     string `mapstructure:"LOG_FILE"`

	// DATABASE_URL wins over the individual DB_* parts
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME" validate:"required"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Empty disables bearer auth on /api/v1
	JWTSecret string `mapstructure:"JWT_SECRET"`

	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Empty host selects the logging mailer
	SMTPHost          string  `mapstructure:"SMTP_HOST"`
	SMTPPort          int     `mapstructure:"SMTP_PORT" validate:"gte=0,lte=65535"`
	SMTPUsername      string  `mapstructure:"SMTP_USERNAME"`
	SMTPPassword      string  `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom          string  `mapstructure:"SMTP_FROM" validate:"required"`
	SMTPTLS           string  `mapstructure:"SMTP_TLS" validate:"omitempty,oneof=none opportunistic mandatory"`
	SMTPTimeoutSec    int     `mapstructure:"SMTP_TIMEOUT_SEC" validate:"gte=0"`
	SMTPRatePerSecond float64 `mapstructure:"SMTP_RATE_PER_SECOND" validate:"gte=0"`

	NotifyConcurrency    int    `mapstructure:"NOTIFY_CONCURRENCY" validate:"min=1"`
	NotifySendTimeoutSec int    `mapstructure:"NOTIFY_SEND_TIMEOUT_SEC" validate:"gte=0"`
	NotifyTemplatesFile  string `mapstructure:"NOTIFY_TEMPLATES_FILE"`
}

var defaults = map[string]interface{}{
	"ENVIRONMENT": "development",
	"PORT":        "7008",
	"LOG_LEVEL":   "info",
	"LOG_FILE":    "",

	"DATABASE_URL": "",
	"DB_HOST":      "localhost",
	"DB_PORT":      "5432",
	"DB_USER":      "postgres",
	"DB_PASSWORD":  "postgres",
	"DB_NAME":      "project_allocation",
	"DB_SSL_MODE":  "disable",

	"JWT_SECRET":      "",
	"ALLOWED_ORIGINS": []string{"http://localhost:3000", "http://localhost:8080"},

	"SMTP_HOST":            "",
	"SMTP_PORT":            587,
	"SMTP_USERNAME":        "",
	"SMTP_PASSWORD":        "",
	"SMTP_FROM":            "noreply@localhost",
	"SMTP_TLS":             "opportunistic",
	"SMTP_TIMEOUT_SEC":     15,
	"SMTP_RATE_PER_SECOND": 5,

	"NOTIFY_CONCURRENCY":      4,
	"NOTIFY_SEND_TIMEOUT_SEC": 30,
	"NOTIFY_TEMPLATES_FILE":   "",
}

// Load reads ./config.yaml or ./config/config.yaml when present, then the environment
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDatabaseURL(&cfg)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func buildDatabaseURL(cfg *Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DatabaseUser, cfg.DatabasePassword),
		Host:     net.JoinHostPort(cfg.DatabaseHost, cfg.DatabasePort),
		Path:     "/" + cfg.DatabaseName,
		RawQuery: url.Values{"sslmode": {cfg.DatabaseSSLMode}}.Encode(),
	}
	return u.String()
}

var structValidator = newValidator()

// newValidator reports failures under the environment variable name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
	return v
}

func validate(cfg *Config) error {
	if err := structValidator.Struct(cfg); err != nil {
		var fields validator.ValidationErrors
		if !errors.As(err, &fields) {
			return err
		}
		msgs := make([]string, 0, len(fields))
		for _, fe := range fields {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}

	if cfg.IsProduction() {
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET must be set in production")
		}
		if cfg.SMTPHost == "" {
			return errors.New("SMTP_HOST must be set in production")
		}
	}
	return nil
}

// IsProduction switches gin to release mode and enforces production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AuthEnabled reports whether bearer tokens are validated on API routes
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// SMTPTimeout returns the dial/IO timeout for the mail transport
func (c *Config) SMTPTimeout() time.Duration {
	return time.Duration(c.SMTPTimeoutSec) * time.Second
}

// NotifySendTimeout bounds a single recipient send
func (c *Config) NotifySendTimeout() time.Duration {
	return time.Duration(c.NotifySendTimeoutSec) * time.Second
}
