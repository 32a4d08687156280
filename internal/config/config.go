package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
//
// PaytableSchema defaults to a path relative to the working directory. When
// PAYTABLE_SCHEMA is unset and that path does not exist, Load looks for
// schemas/paytable.schema.json next to PAYTABLE_FILE instead, so a binary run
// outside the repo root can still use a configs/ directory shipped with it.
type Config struct {
	StartingCredits int    `validate:"gte=0"`
	CostPerSpin     int    `validate:"gt=0"`
	SimulatedSpins  int    `validate:"gte=0"`
	SimSeed         uint64 // 0 selects the crypto/rand source
	PaytableFile    string // empty selects the built-in paytable
	PaytableSchema  string `validate:"required_with=PaytableFile"`
	LogLevel        string `validate:"oneof=debug info warn warning error"`
	LogFormat       string `validate:"oneof=json text"`
	Environment     string `validate:"required"`
	ServiceName     string `validate:"required"`
	Version         string
	MetricsPort     int `validate:"gte=0,lte=65535"` // 0 disables the metrics server
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		PaytableFile:   getEnv(EnvPaytableFile, ""),
		PaytableSchema: getEnv(EnvPaytableSchema, ConfigPathPaytableSchema),
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
	}

	var err error
	if cfg.StartingCredits, err = getEnvAsInt(EnvStartingCredits, DefaultStartingCredits); err != nil {
		return nil, err
	}
	if cfg.CostPerSpin, err = getEnvAsInt(EnvCostPerSpin, DefaultCostPerSpin); err != nil {
		return nil, err
	}
	if cfg.SimulatedSpins, err = getEnvAsInt(EnvSimulatedSpins, DefaultSimulatedSpins); err != nil {
		return nil, err
	}
	if cfg.MetricsPort, err = getEnvAsInt(EnvMetricsPort, 0); err != nil {
		return nil, err
	}
	if cfg.SimSeed, err = getEnvAsUint64(EnvSimSeed, 0); err != nil {
		return nil, err
	}

	if getEnv(EnvPaytableSchema, "") == "" {
		cfg.PaytableSchema = resolvePaytableSchema(cfg.PaytableFile, cfg.PaytableSchema)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePaytableSchema prefers the default schema path when it exists and
// otherwise falls back to the schemas directory beside the paytable file.
func resolvePaytableSchema(paytableFile, defaultSchema string) string {
	if paytableFile == "" {
		return defaultSchema
	}
	if _, err := os.Stat(defaultSchema); err == nil {
		return defaultSchema
	}
	sibling := filepath.Join(filepath.Dir(paytableFile), PaytableSchemaDir, filepath.Base(defaultSchema))
	if _, err := os.Stat(sibling); err == nil {
		return sibling
	}
	return defaultSchema
}

// IsDevelopment reports whether the config targets a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to defaultValue when unset
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}
