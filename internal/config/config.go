package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	HTTPAddr         string   `env:"LEDGER_HTTP_ADDR" envDefault:":8080"`
	KafkaBrokers     []string `env:"LEDGER_KAFKA_BROKERS" envSeparator:","`
	KafkaTopic       string   `env:"LEDGER_KAFKA_TOPIC" envDefault:"ledger.transactions"`
	EventBuffer      int      `env:"LEDGER_EVENT_BUFFER" envDefault:"1000"`
	CredentialDigits int      `env:"LEDGER_CREDENTIAL_DIGITS" envDefault:"4"`
	AmountScale      int32    `env:"LEDGER_AMOUNT_SCALE" envDefault:"2"`
	RecentLimit      int      `env:"LEDGER_RECENT_LIMIT" envDefault:"5"`
	BcryptCost       int      `env:"LEDGER_BCRYPT_COST" envDefault:"10"`
}

// Load parses the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.KafkaBrokers = trimBrokers(cfg.KafkaBrokers)
	cfg.KafkaTopic = strings.TrimSpace(cfg.KafkaTopic)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.HTTPAddr) == "" {
		errs = append(errs, errors.New("LEDGER_HTTP_ADDR is required"))
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		errs = append(errs, errors.New("LEDGER_KAFKA_TOPIC is required when brokers are set"))
	}
	if c.EventBuffer < 0 {
		errs = append(errs, fmt.Errorf("LEDGER_EVENT_BUFFER must be >= 0, got %d", c.EventBuffer))
	}
	if c.CredentialDigits < 0 {
		errs = append(errs, fmt.Errorf("LEDGER_CREDENTIAL_DIGITS must be >= 0, got %d", c.CredentialDigits))
	}
	if c.AmountScale < 0 {
		errs = append(errs, fmt.Errorf("LEDGER_AMOUNT_SCALE must be >= 0, got %d", c.AmountScale))
	}
	if c.RecentLimit <= 0 {
		errs = append(errs, fmt.Errorf("LEDGER_RECENT_LIMIT must be > 0, got %d", c.RecentLimit))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("LEDGER_BCRYPT_COST must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}
	return errors.Join(errs...)
}

func trimBrokers(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, b := range raw {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
