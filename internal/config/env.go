package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port                 string `envconfig:"PORT" default:"8080"`
	VaultFilePath        string `envconfig:"VAULT_FILE_PATH" default:""`
	PrimaryAddress       string `envconfig:"PRIMARY_ADDRESS" default:"0x12aB84C3De90F15c2778De3A5C6B7dD1E0a4F921"`
	KnownPrefixLength    int    `envconfig:"KNOWN_PREFIX_LENGTH" default:"2"`
	ToastTTLMillis       int    `envconfig:"TOAST_TTL_MILLIS" default:"2500"`
	LockCountdownSeconds int    `envconfig:"LOCK_COUNTDOWN_SECONDS" default:"10"`
	MockChainSeed        int64  `envconfig:"MOCK_CHAIN_SEED" default:"1"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetVaultFilePath returns the vault store path. Empty means in-memory only.
func GetVaultFilePath() string {
	return Get().VaultFilePath
}

// GetPrimaryAddress returns the wallet's primary address
func GetPrimaryAddress() string {
	return Get().PrimaryAddress
}

// GetKnownPrefix returns the primary-address prefix used to classify a
// recipient as known. Prefix length is capped at the address length.
func GetKnownPrefix() string {
	c := Get()
	// "0x" plus the configured number of hex characters
	n := 2 + c.KnownPrefixLength
	if n > len(c.PrimaryAddress) {
		n = len(c.PrimaryAddress)
	}
	return c.PrimaryAddress[:n]
}

// GetToastTTLMillis returns the toast auto-dismiss delay in milliseconds
func GetToastTTLMillis() int {
	return Get().ToastTTLMillis
}

// GetLockCountdownSeconds returns the settings re-auth countdown length
func GetLockCountdownSeconds() int {
	return Get().LockCountdownSeconds
}

// GetMockChainSeed returns the seed for fabricated balances and history
func GetMockChainSeed() int64 {
	return Get().MockChainSeed
}
