package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKnight loads the knight game configuration.
// Search order: customPath -> ~/.knight/configs/knight.yaml -> ./configs/knight.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the keys it changes.
func LoadKnight(customPath string) (KnightConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KnightConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseKnight(data)
		if err != nil {
			return KnightConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("knight.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseKnight(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "knight.yaml")); err == nil {
		if cfg, err := parseKnight(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseKnight(defaultKnightYAML)
	if err != nil {
		return DefaultKnightConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseKnight(data []byte) (KnightConfig, error) {
	cfg := DefaultKnightConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KnightConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return KnightConfig{}, err
	}
	return cfg, nil
}

// ApplyKnightPreset adjusts the player's starting stats for a difficulty preset.
func ApplyKnightPreset(cfg *KnightConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 150
		cfg.Player.Power = 15
	case DifficultyHard:
		cfg.Player.Health = 70
		cfg.Player.Power = 7
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".knight", "configs", filename)
}
