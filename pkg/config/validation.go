package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration for errors.
//
// Struct tags handle field-level constraints (required values, ranges,
// enumerations). Cross-field rules that tags cannot express are checked
// explicitly afterwards.
//
// Validation does not mutate the configuration; normalization (such as
// upper-casing log levels) happens in ApplyDefaults.
func Validate(cfg *Config) error {
	v := validator.New()

	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Telemetry needs a collector endpoint once enabled
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		return fmt.Errorf("telemetry is enabled but no endpoint is configured")
	}

	// Profiling needs a Pyroscope endpoint once enabled
	if cfg.Telemetry.Profiling.Enabled && cfg.Telemetry.Profiling.Endpoint == "" {
		return fmt.Errorf("profiling is enabled but no endpoint is configured")
	}

	// Mount ids must be unique; the registry would reject duplicates at
	// startup, but failing here gives a clearer message.
	seen := make(map[string]struct{}, len(cfg.Mounts))
	for _, m := range cfg.Mounts {
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("duplicate mount id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	return nil
}
