package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// configTemplate is the commented sample configuration written by
// 'lunafinder init'. It mirrors GetDefaultConfig; keep the two in sync.
const configTemplate = `# LunaFinder Configuration File
#
# Environment variables override file values using the LUNAFINDER_ prefix:
#   LUNAFINDER_LOGGING_LEVEL=DEBUG
#   LUNAFINDER_API_PORT=9000

logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: "INFO"
  # Output format: text, json
  format: "text"
  # Destination: stdout, stderr, or a file path
  output: "stdout"

# Maximum time to wait for in-flight requests during shutdown
shutdown_timeout: 30s

api:
  # Health API server port
  port: 8080

metrics:
  # Prometheus metrics server (opt-in)
  enabled: false
  port: 9090

telemetry:
  # OpenTelemetry tracing (opt-in)
  enabled: false
  endpoint: "localhost:4317"
  insecure: true
  sample_rate: 1.0

vfs:
  # Recursion limit for tree listings
  max_tree_depth: 12
  # Largest file 'lunafinder cat' will print
  max_open_size: 16Mi

# Directories exposed through the virtual filesystem.
# Each mount maps a stable id to a directory root on the host.
mounts:
  - id: public
    path: ./public
    description: "Public files"
`

// InitConfig creates a configuration file at the default location.
//
// Returns the path of the created file. Fails if a config file already
// exists unless force is true.
func InitConfig(force bool) (string, error) {
	configPath := GetDefaultConfigPath()
	if err := InitConfigToPath(configPath, force); err != nil {
		return "", err
	}
	return configPath, nil
}

// InitConfigToPath creates a configuration file at the given path,
// creating parent directories as needed.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s\n\n"+
				"Use --force to overwrite", path)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
