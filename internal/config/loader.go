package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "candlelight.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.candlelight/configs/candlelight.yaml ->
// ./configs/candlelight.yaml -> embedded default -> Default().
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Embedded returns the embedded default YAML, falling back to Default().
func Embedded() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func parse(data []byte) (Config, error) {
	cfg := Embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".candlelight", "configs", filename)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
