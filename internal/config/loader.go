package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a mode config.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default -> hardcoded.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	var cfg T

	// A custom path is explicit; failing to read it is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var user T
			if err := yaml.Unmarshal(data, &user); err == nil {
				return user, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var local T
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
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

// LoadRunner loads Runner configuration and applies the difficulty preset.
func LoadRunner(customPath string, preset DifficultyPreset) (RunnerConfig, error) {
	cfg, err := load("runner", customPath, DefaultRunnerConfig)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg.Difficulty, preset)
	return cfg, nil
}

// LoadFlappy loads Flappy configuration and applies the difficulty preset.
func LoadFlappy(customPath string, preset DifficultyPreset) (FlappyConfig, error) {
	cfg, err := load("flappy", customPath, DefaultFlappyConfig)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg.Difficulty, preset)
	return cfg, nil
}

// LoadGravity loads Gravity Flip configuration and applies the difficulty preset.
func LoadGravity(customPath string, preset DifficultyPreset) (GravityConfig, error) {
	cfg, err := load("gravity", customPath, DefaultGravityConfig)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg.Difficulty, preset)
	return cfg, nil
}

// LoadColor loads Color Match configuration and applies the difficulty preset.
func LoadColor(customPath string, preset DifficultyPreset) (ColorConfig, error) {
	cfg, err := load("color", customPath, DefaultColorConfig)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg.Difficulty, preset)
	return cfg, nil
}

// LoadBlock loads Block Puzzle configuration. Block has no speed, so presets do not apply.
func LoadBlock(customPath string) (BlockConfig, error) {
	return load("block", customPath, DefaultBlockConfig)
}
