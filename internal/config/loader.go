package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the fallback configuration sources.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the configuration for a profile and reports where it came from.
// Search order: customPath -> ~/.flappy-shark/configs/<profile>.yaml ->
// ./configs/<profile>.yaml -> embedded default -> builtin default.
// Files are layered on top of the embedded default, so a file only needs the
// keys it changes. A customPath that cannot be read or parsed is an error;
// broken files found by the search are skipped.
func Load(p Profile, customPath string) (GameConfig, string, error) {
	base, source, err := embedded(p)
	if err != nil {
		return GameConfig{}, "", err
	}

	if customPath != "" {
		cfg, err := loadFile(customPath, base)
		if err != nil {
			return GameConfig{}, "", err
		}
		if err := cfg.Validate(); err != nil {
			return GameConfig{}, "", fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	filename := string(p) + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path, base)
		if err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	return base, source, nil
}

// embedded parses the embedded default for p, falling back to the builtin one.
func embedded(p Profile) (GameConfig, string, error) {
	fallback, err := Default(p)
	if err != nil {
		return GameConfig{}, "", err
	}

	cfg := fallback
	if err := yaml.Unmarshal(GetDefaultYAML(p), &cfg); err != nil || cfg.Validate() != nil {
		return fallback, SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads path and decodes it over a copy of base.
func loadFile(path string, base GameConfig) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := base
	cfg.Assets.Obstacles = append([]string(nil), base.Assets.Obstacles...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy-shark", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
