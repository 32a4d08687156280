package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

var allEnvVars = []string{
	EnvStartingCredits, EnvCostPerSpin, EnvSimulatedSpins, EnvSimSeed,
	EnvPaytableFile, EnvPaytableSchema, EnvLogLevel, EnvLogFormat,
	EnvEnvironment, EnvServiceName, EnvVersion, EnvMetricsPort,
}

// clearEnv blanks every variable Load reads; getEnv treats empty as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultStartingCredits, cfg.StartingCredits)
	assert.Equal(t, DefaultCostPerSpin, cfg.CostPerSpin)
	assert.Equal(t, DefaultSimulatedSpins, cfg.SimulatedSpins)
	assert.Equal(t, uint64(0), cfg.SimSeed)
	assert.Empty(t, cfg.PaytableFile)
	assert.Equal(t, ConfigPathPaytableSchema, cfg.PaytableSchema)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 0, cfg.MetricsPort)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStartingCredits, "250")
	t.Setenv(EnvCostPerSpin, " 10 ")
	t.Setenv(EnvSimulatedSpins, "0")
	t.Setenv(EnvSimSeed, "42")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFormat, "JSON")
	t.Setenv(EnvEnvironment, "prod")
	t.Setenv(EnvMetricsPort, "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.StartingCredits)
	assert.Equal(t, 10, cfg.CostPerSpin)
	assert.Equal(t, 0, cfg.SimulatedSpins)
	assert.Equal(t, uint64(42), cfg.SimSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 9090, cfg.MetricsPort)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric credits", EnvStartingCredits, "lots"},
		{"float cost", EnvCostPerSpin, "2.5"},
		{"negative seed", EnvSimSeed, "-1"},
		{"non-numeric port", EnvMetricsPort, "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_RejectsInvalidGameSettings(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		errorMsg string
	}{
		{"zero cost per spin", EnvCostPerSpin, "0", "CostPerSpin must be greater than 0"},
		{"negative cost per spin", EnvCostPerSpin, "-5", "CostPerSpin must be greater than 0"},
		{"negative starting credits", EnvStartingCredits, "-1", "StartingCredits must be at least 0"},
		{"negative simulated spins", EnvSimulatedSpins, "-3", "SimulatedSpins must be at least 0"},
		{"unknown log level", EnvLogLevel, "verbose", "LogLevel must be one of"},
		{"port out of range", EnvMetricsPort, "70000", "MetricsPort must be at most 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := &Config{
		StartingCredits: -1,
		CostPerSpin:     0,
		LogLevel:        "info",
		LogFormat:       "text",
		Environment:     "dev",
		ServiceName:     "slot-machine",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CostPerSpin")
	assert.Contains(t, err.Error(), "StartingCredits")
}

func TestValidate_PaytableSchemaRequiredWithFile(t *testing.T) {
	cfg := &Config{
		CostPerSpin:  5,
		PaytableFile: "configs/paytable.json",
		LogLevel:     "info",
		LogFormat:    "text",
		Environment:  "dev",
		ServiceName:  "slot-machine",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PaytableSchema is required")

	cfg.PaytableSchema = ConfigPathPaytableSchema
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PaytableSchemaBesidePaytableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, PaytableSchemaDir), 0o755))
	paytable := filepath.Join(dir, "paytable.json")
	schema := filepath.Join(dir, PaytableSchemaDir, "paytable.schema.json")
	require.NoError(t, os.WriteFile(paytable, []byte(`{"symbols":[]}`), 0o600))
	require.NoError(t, os.WriteFile(schema, []byte(`{}`), 0o600))

	t.Run("falls back beside the paytable file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPaytableFile, paytable)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, schema, cfg.PaytableSchema)
	})

	t.Run("explicit schema wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPaytableFile, paytable)
		t.Setenv(EnvPaytableSchema, "elsewhere/paytable.schema.json")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "elsewhere/paytable.schema.json", cfg.PaytableSchema)
	})

	t.Run("no sibling keeps the default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPaytableFile, filepath.Join(t.TempDir(), "paytable.json"))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ConfigPathPaytableSchema, cfg.PaytableSchema)
	})
}
