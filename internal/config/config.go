// Package config handles configuration loading and management
// Defaults are production safe; a config file is optional and only
// overrides what it names. Keys can also come from the environment
// with the CARDSCANNER_ prefix (CARDSCANNER_SCANNER_ALLOW_TEST_CARDS).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every setting the SDK consumes.
type Config struct {
	Scanner ScannerConfig `mapstructure:"scanner"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// ScannerConfig controls the scan pipeline behavior.
type ScannerConfig struct {
	// ConfidenceThreshold is the minimum aggregate recognition
	// confidence for an attempt to proceed (0.0-1.0)
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`

	// SecurityValidationEnabled toggles the policy evaluation stage
	SecurityValidationEnabled bool `mapstructure:"security_validation_enabled"`

	// AllowTestCards accepts the published network test numbers
	AllowTestCards bool `mapstructure:"allow_test_cards"`
}

// LoggerConfig controls log output.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`

	// Format is "console" or "json"
	Format string `mapstructure:"format"`
}

// setDefaults registers the default for every key. Every knob has a
// default so an absent config file yields a fully working setup.
func setDefaults(v *viper.Viper) {
	v.SetDefault("scanner.confidence_threshold", 0.8)
	v.SetDefault("scanner.security_validation_enabled", true)
	v.SetDefault("scanner.allow_test_cards", false)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
}

// Load reads configuration from defaults, an optional file, and the
// environment, then validates the result.
//
// Parameters:
//   - path: Config file path; "" skips the file and uses defaults only
//
// Returns:
//   - *Config: Validated configuration
//   - error: Unreadable/unparsable file or failed validation
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CARDSCANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the validated default configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults always validate; reaching this is a programming error
		panic(err)
	}
	return cfg
}
