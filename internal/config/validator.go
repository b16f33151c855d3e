// Package config - Configuration validation
// Catches bad values at load time so the pipeline never has to guard
// against them at scan time.
package config

import "fmt"

// validLogLevels and validLogFormats are the accepted logger values.
var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"console": true, "json": true}
)

// Validate checks every field for a usable value.
//
// Rules:
//   - confidence_threshold must be within [0.0, 1.0]
//   - logger.level must be debug, info, warn or error
//   - logger.format must be console or json
//
// Returns:
//   - error: First rule violation found, nil when the config is usable
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	threshold := cfg.Scanner.ConfidenceThreshold
	if threshold < 0.0 || threshold > 1.0 {
		return fmt.Errorf("scanner.confidence_threshold must be between 0.0 and 1.0, got %v", threshold)
	}

	if !validLogLevels[cfg.Logger.Level] {
		return fmt.Errorf("logger.level must be one of debug, info, warn, error; got %q", cfg.Logger.Level)
	}

	if !validLogFormats[cfg.Logger.Format] {
		return fmt.Errorf("logger.format must be console or json, got %q", cfg.Logger.Format)
	}

	return nil
}
