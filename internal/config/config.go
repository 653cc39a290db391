// Package config loads the service configuration from the environment.
//
// An optional .env file in the working directory is loaded first; variables
// already set in the environment win over it. Every key has a default so the
// server starts with no configuration at all, except that auth stays off
// until JWT_SECRET is set.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	StoreMemory = "memory"
	StoreSQLite = "sqlite"

	minSecretLen = 16
)

// Config is the typed view of the environment.
type Config struct {
	Port     int
	Env      string
	LogLevel slog.Level
	Release  string

	// JWTSecret signs session tokens. Empty disables the auth routes.
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	StoreDriver       string
	AssignProgressIDs bool

	SentryDSN      string
	MetricsEnabled bool
}

// AuthEnabled reports whether a signing secret is configured.
func (c Config) AuthEnabled() bool { return c.JWTSecret != "" }

// Load reads .env (if present) and the environment into a Config and
// validates it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading .env: %w", err)
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("PORT", 8080)
	v.SetDefault("ENV", EnvDev)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RELEASE", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("PROGRESS_ASSIGN_IDS", false)
	v.SetDefault("SENTRY_DSN", "")
	v.SetDefault("METRICS_ENABLED", true)

	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:              v.GetInt("PORT"),
		Env:               strings.ToLower(strings.TrimSpace(v.GetString("ENV"))),
		Release:           v.GetString("RELEASE"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		TokenTTL:          v.GetDuration("TOKEN_TTL"),
		BcryptCost:        v.GetInt("BCRYPT_COST"),
		StoreDriver:       strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		AssignProgressIDs: v.GetBool("PROGRESS_ASSIGN_IDS"),
		SentryDSN:         v.GetString("SENTRY_DSN"),
		MetricsEnabled:    v.GetBool("METRICS_ENABLED"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.Env != EnvDev && c.Env != EnvProd {
		errs = append(errs, fmt.Errorf("ENV must be %q or %q, got %q", EnvDev, EnvProd, c.Env))
	}
	if c.StoreDriver != StoreMemory && c.StoreDriver != StoreSQLite {
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMemory, StoreSQLite, c.StoreDriver))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLen))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
