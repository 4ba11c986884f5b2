package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, k := range []string{"PORT", "DATABASE_URL", "REQUEST_TIMEOUT", "CORS_ALLOWED_ORIGINS", "EMAIL_PROVIDER", "BOOKING_NOTIFY_EMAIL", "OTEL_ENDPOINT", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.DBUrl, "/fyyur")
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Empty(t, cfg.Email.NotifyAddress)
	assert.Empty(t, cfg.Tracing.Endpoint)
	assert.Equal(t, "fyyur", cfg.Tracing.ServiceName)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://fyyur.example")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("BOOKING_NOTIFY_EMAIL", "desk@fyyur.example")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_MAX_IDLE_CONNS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://fyyur.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.Equal(t, "desk@fyyur.example", cfg.Email.NotifyAddress)
	assert.True(t, cfg.Email.SESInsecureSkipVerify)
	assert.Equal(t, 4, cfg.DBMaxIdleConns, "idle connections are capped at the open limit")
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "parse env")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	newLogger(&buf, "development", "").Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestSetupTracing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  TracingConfig
	}{
		{name: "no endpoint", cfg: TracingConfig{Enabled: true}},
		{name: "disabled", cfg: TracingConfig{Enabled: false, Endpoint: "http://192.0.2.1:4318"}},
		// Non-routable address; nothing is exported before shutdown.
		{name: "enabled", cfg: TracingConfig{Enabled: true, Endpoint: "http://192.0.2.1:4318", ServiceName: "fyyur-test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := SetupTracing(ctx, tt.cfg)
			require.NoError(t, err)
			require.NoError(t, shutdown(ctx))
		})
	}
}
