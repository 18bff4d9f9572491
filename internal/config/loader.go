package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the shooter configuration.
// Search order: customPath -> ~/.starblitz/configs/starblitz.yaml ->
// ./configs/starblitz.yaml -> embedded default.
func Load(customPath string) (ShooterConfig, error) {
	var cfg ShooterConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("starblitz.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/starblitz.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStarblitzYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starblitz", "configs", filename)
}

// ApplyPreset adjusts the config for a difficulty preset. An unknown or
// empty preset leaves the config untouched (normal).
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	cfg.Preset = preset
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 7
		cfg.PowerUps.DropChance = 0.18
		cfg.Waves.EscalateEvery = 4
	case DifficultyHard:
		cfg.Player.Health = 3
		cfg.PowerUps.DropChance = 0.08
		cfg.Waves.EscalateEvery = 2
		cfg.Waves.IntermissionSecs = 1.5
	}
}
