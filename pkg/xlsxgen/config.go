package xlsxgen

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// Config contains all configuration options for the xlsxgen engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string
	// ShortBools selects "1"/"0" boolean rendering for new workbooks; when
	// false, "true"/"false" is used
	ShortBools bool
	// StrictMode makes serialization fail on conditions that would
	// otherwise only log a warning, e.g. skipped relationship types
	StrictMode bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		ShortBools: true,
		StrictMode: false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// XLSXGEN_LOG_LEVEL
	if val := os.Getenv("XLSXGEN_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// XLSXGEN_SHORT_BOOLS
	if val := os.Getenv("XLSXGEN_SHORT_BOOLS"); val != "" {
		config.ShortBools = parseBool(val)
	}

	// XLSXGEN_STRICT_MODE
	if val := os.Getenv("XLSXGEN_STRICT_MODE"); val != "" {
		config.StrictMode = parseBool(val)
	}

	return config
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	// Create a copy of the overrides
	config := *overrides

	// Apply defaults for zero values
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
