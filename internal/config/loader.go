package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWakaman loads Waka Man configuration.
// Search order: customPath -> ~/.arcade/configs/wakaman.yaml -> ./configs/wakaman.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it
// changes. A custom path that cannot be read, parsed or validated is an error;
// the implicit locations are skipped when broken.
func LoadWakaman(customPath string) (WakamanConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultWakamanConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("wakaman.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "wakaman.yaml")); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultWakamanYAML)
	if err != nil {
		return DefaultWakamanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (WakamanConfig, error) {
	cfg := DefaultWakamanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (WakamanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WakamanConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return WakamanConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ParsePreset validates a difficulty preset name. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyWakamanPreset modifies the config based on a difficulty preset.
func ApplyWakamanPreset(cfg *WakamanConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
