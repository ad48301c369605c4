package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	fileName = ".vale-mcp.yaml"

	// EnvConfigPath overrides the vale configuration file for the whole
	// process. Read once at startup.
	EnvConfigPath = "VALE_CONFIG_PATH"
)

// ServerConfig is the process-lifetime configuration of the server itself.
type ServerConfig struct {
	// ValePath is the vale binary to invoke. Defaults to "vale" on PATH.
	ValePath string `yaml:"vale_path"`
	// ConfigPath is an optional override for vale's own configuration file.
	ConfigPath string `yaml:"config_path"`
}

// DefaultServerConfig returns the configuration used when no file exists.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{ValePath: "vale"}
}

// Load reads .vale-mcp.yaml from dir and overlays the VALE_CONFIG_PATH
// environment variable on top. A missing file is not an error.
func Load(dir string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// keep defaults
	case err != nil:
		return ServerConfig{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ServerConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
		if cfg.ValePath == "" {
			cfg.ValePath = "vale"
		}
	}

	if env := os.Getenv(EnvConfigPath); env != "" {
		cfg.ConfigPath = env
	}
	return cfg, nil
}
