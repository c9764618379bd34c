package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name looked up in every search directory.
const ConfigFile = "puzzle.yaml"

// LoadPuzzle loads the puzzle configuration.
// Search order: customPath -> ~/.puzzle/configs/puzzle.yaml -> ./configs/puzzle.yaml -> embedded default
func LoadPuzzle(customPath string) (PuzzleConfig, error) {
	var cfg PuzzleConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPuzzleYAML, &cfg); err != nil {
		return DefaultPuzzleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next location in the search order is tried.
func tryLoad(path string) (PuzzleConfig, bool) {
	var cfg PuzzleConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzle", "configs", filename)
}

// Marshal renders cfg as YAML, in the same layout LoadPuzzle reads.
func Marshal(cfg PuzzleConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
