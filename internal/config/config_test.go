package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:       "development",
		Port:              "7008",
		DatabaseName:      "project_allocation",
		SMTPFrom:          "noreply@localhost",
		SMTPTLS:           "opportunistic",
		NotifyConcurrency: 4,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid development config", func(*Config) {}, ""},
		{"production requires JWT secret", func(c *Config) {
			c.Environment = "production"
			c.SMTPHost = "smtp.example.com"
		}, "JWT_SECRET"},
		{"production requires SMTP host", func(c *Config) {
			c.Environment = "production"
			c.JWTSecret = "secret"
		}, "SMTP_HOST"},
		{"missing database name", func(c *Config) { c.DatabaseName = "" }, "DB_NAME failed required"},
		{"unknown TLS policy", func(c *Config) { c.SMTPTLS = "sometimes" }, "SMTP_TLS failed oneof"},
		{"zero concurrency", func(c *Config) { c.NotifyConcurrency = 0 }, "NOTIFY_CONCURRENCY failed min"},
		{"port out of range", func(c *Config) { c.SMTPPort = 70000 }, "SMTP_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "user",
		DatabasePassword: "pass",
		DatabaseHost:     "db",
		DatabasePort:     "5432",
		DatabaseName:     "spas",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://user:pass@db:5432/spas?sslmode=disable", buildDatabaseURL(cfg))

	cfg.DatabasePassword = "p@ss/word"
	assert.Equal(t, "postgres://user:p%40ss%2Fword@db:5432/spas?sslmode=disable", buildDatabaseURL(cfg))
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "spas_env")
	t.Setenv("NOTIFY_CONCURRENCY", "8")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 8, cfg.NotifyConcurrency)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Contains(t, cfg.DatabaseURL, "/spas_env?sslmode=disable")
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoad_RejectsInvalidEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NOTIFY_CONCURRENCY", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFY_CONCURRENCY")
}

func TestDurations(t *testing.T) {
	cfg := &Config{SMTPTimeoutSec: 15, NotifySendTimeoutSec: 30}
	assert.Equal(t, 15*time.Second, cfg.SMTPTimeout())
	assert.Equal(t, 30*time.Second, cfg.NotifySendTimeout())
	assert.False(t, cfg.AuthEnabled())
	cfg.JWTSecret = "s"
	assert.True(t, cfg.AuthEnabled())
}
