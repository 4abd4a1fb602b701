package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	PortKey          = "PORT"
	AppEnvKey        = "APP_ENV"
	SessionTTLKey    = "SESSION_TTL"
	SweepScheduleKey = "SESSION_SWEEP_SCHEDULE"
)

// Config holds server settings read from the environment.
type Config struct {
	Port          string
	AppEnv        string
	SessionTTL    time.Duration
	SweepSchedule string
}

func (c Config) IsProduction() bool { return c.AppEnv == "production" }

// LoadDotEnv loads variables from the given .env files (default ".env") into the
// process environment. Variables already set are not overridden. It reports
// whether a file was read.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// New returns a viper instance bound to the environment with service defaults.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(PortKey, "8080")
	v.SetDefault(AppEnvKey, "development")
	v.SetDefault(SessionTTLKey, "30m")
	v.SetDefault(SweepScheduleKey, "@every 1m")
	v.AutomaticEnv()
	return v
}

// Load reads and validates the configuration.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, errors.New("load config: viper is nil")
	}

	cfg := Config{
		Port:          strings.TrimSpace(v.GetString(PortKey)),
		AppEnv:        strings.ToLower(strings.TrimSpace(v.GetString(AppEnvKey))),
		SweepSchedule: strings.TrimSpace(v.GetString(SweepScheduleKey)),
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("load config: %s must not be empty", PortKey)
	}

	ttl, err := time.ParseDuration(strings.TrimSpace(v.GetString(SessionTTLKey)))
	if err != nil {
		return Config{}, fmt.Errorf("load config: parse %s: %w", SessionTTLKey, err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("load config: %s must be positive, got %s", SessionTTLKey, ttl)
	}
	cfg.SessionTTL = ttl

	if cfg.SweepSchedule == "" {
		return Config{}, fmt.Errorf("load config: %s must not be empty", SweepScheduleKey)
	}

	return cfg, nil
}

