// Package config loads the dashboard configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	BalancesFile string // csv with account,date,balance records
	AccountsFile string // csv with account,type records
	Currency     string // ISO code of the display currency
	Port         int
	LogLevel     string
	LogPretty    bool
}

// Load reads configuration from environment variables, after loading a .env file if it exists.
func Load() (*Config, error) {
	// a missing .env is fine, the environment and defaults are enough.
	_ = godotenv.Load()

	cfg := &Config{
		BalancesFile: getEnv("DASHBOARD_BALANCES", "data/raw/balance_sample.csv"),
		AccountsFile: getEnv("DASHBOARD_ACCOUNTS", "data/raw/accounts_sample.csv"),
		Currency:     strings.ToUpper(getEnv("DASHBOARD_CURRENCY", "EUR")),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Port, err = getEnvAsInt("DASHBOARD_PORT", 8050); err != nil {
		return nil, err
	}
	if cfg.LogPretty, err = getEnvAsBool("LOG_PRETTY", true); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("DASHBOARD_PORT out of range: %d", cfg.Port)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return i, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}
