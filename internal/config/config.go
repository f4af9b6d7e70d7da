// Package config loads the gateway configuration from the environment.
// Configuration is read once at startup and injected into components;
// nothing reads ambient process state mid-request.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Processor ProcessorConfig `koanf:"processor"`
	Payments  PaymentsConfig  `koanf:"payments"`
	Logger    LoggerConfig    `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
	// Debug controls whether internal fault detail is included in
	// error responses. Never enable outside local development.
	Debug bool `koanf:"debug"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// ProcessorConfig carries the external processor endpoint and the
// process-wide credentials attached to every call.
type ProcessorConfig struct {
	BaseURL             string        `koanf:"base_url" validate:"required"`
	SecretKey           string        `koanf:"secret_key" validate:"required"`
	ProcessingChannelID string        `koanf:"processing_channel_id" validate:"required"`
	Timeout             time.Duration `koanf:"timeout" validate:"required"`
	MetadataTag         string        `koanf:"metadata_tag"`
}

// PaymentsConfig carries the fixed conversion and reference constants of
// the normalization pipeline.
type PaymentsConfig struct {
	// ExchangeRateHKDToEUR is the fixed HKD->EUR rate applied when the
	// client selects EUR.
	ExchangeRateHKDToEUR float64 `koanf:"exchange_rate_hkd_eur" validate:"required"`
	// MinExpiryYear is the lowest 4-digit expiry year accepted on cards.
	MinExpiryYear   int    `koanf:"min_expiry_year" validate:"required"`
	ReferencePrefix string `koanf:"reference_prefix" validate:"required"`
	// RedirectBaseURL is the simulated bank page iDEAL payments are sent to.
	RedirectBaseURL string `koanf:"redirect_base_url" validate:"required"`
	// PublicBaseURL is this service's externally reachable address, used
	// to build the iDEAL return URL.
	PublicBaseURL string `koanf:"public_base_url" validate:"required"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// NewLogger builds the process logger at the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// defaults mirror the sandbox reference setup; any value can be
// overridden through GATEWAY_* environment variables.
var defaults = map[string]interface{}{
	"primary.env":                    "development",
	"server.port":                    "3001",
	"server.read_timeout":            "15s",
	"server.write_timeout":           "15s",
	"server.idle_timeout":            "60s",
	"processor.base_url":             "https://api.sandbox.checkout.com",
	"processor.timeout":              "30s",
	"processor.metadata_tag":         "IE Test",
	"payments.exchange_rate_hkd_eur": 0.11,
	"payments.min_expiry_year":       2024,
	"payments.reference_prefix":      "test_cko_lp",
	"payments.redirect_base_url":     "https://ideal-simulator.com/payment",
	"payments.public_base_url":       "http://localhost:3001",
	"logger.level":                   "info",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
