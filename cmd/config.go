package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"atelier/internal/core/application/access"
	"atelier/internal/core/domain/model/order"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort          string        `env:"HTTP_PORT" envDefault:"8080"`
	DBDsn             string        `env:"DB_DSN"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"LOG_FORMAT" envDefault:"json"`
	ManagerAccessCode string        `env:"MANAGER_ACCESS_CODE"`
	TransitionMode    string        `env:"ORDER_TRANSITION_MODE" envDefault:"permissive"`
	IntakeDelay       time.Duration `env:"INTAKE_DELAY" envDefault:"3500ms"`
	SeedEnabled       bool          `env:"SEED_ENABLED" envDefault:"true"`
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	_, policyErr := c.TransitionPolicy()
	_, levelErr := c.SlogLevel()

	var delayErr error
	if c.IntakeDelay < 0 {
		delayErr = fmt.Errorf("INTAKE_DELAY must not be negative, got %s", c.IntakeDelay)
	}
	var formatErr error
	if c.LogFormat != "json" && c.LogFormat != "text" {
		formatErr = fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return errors.Join(policyErr, levelErr, delayErr, formatErr)
}

func (c Config) TransitionPolicy() (order.TransitionPolicy, error) {
	return order.TransitionPolicyFromString(c.TransitionMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// ManagerCode falls back to the shop's historical secret when unset.
func (c Config) ManagerCode() string {
	if c.ManagerAccessCode == "" {
		return access.DefaultManagerCode
	}
	return c.ManagerAccessCode
}
