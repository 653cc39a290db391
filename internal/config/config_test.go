package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key so a developer's shell or .env cannot leak into
// the test. AutomaticEnv treats an empty variable as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "ENV", "LOG_LEVEL", "RELEASE", "JWT_SECRET", "TOKEN_TTL", "BCRYPT_COST",
		"STORE_DRIVER", "PROGRESS_ASSIGN_IDS", "SENTRY_DSN", "METRICS_ENABLED",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.False(t, cfg.AssignProgressIDs)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "PROD")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("PROGRESS_ASSIGN_IDS", "true")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.True(t, cfg.AssignProgressIDs)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"port out of range", "PORT", "70000", "PORT"},
		{"unknown env", "ENV", "staging", "ENV"},
		{"unknown store", "STORE_DRIVER", "postgres", "STORE_DRIVER"},
		{"short secret", "JWT_SECRET", "tooshort", "JWT_SECRET"},
		{"negative ttl", "TOKEN_TTL", "-1h", "TOKEN_TTL"},
		{"bad log level", "LOG_LEVEL", "loud", "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, Config{Env: EnvProd, LogLevel: slog.LevelInfo}).Info("hello", slog.Int("n", 1))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])

	buf.Reset()
	NewLogger(&buf, Config{Env: EnvDev, LogLevel: slog.LevelWarn}).Info("quiet")
	assert.Empty(t, buf.String())
}
