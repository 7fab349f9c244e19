package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source names where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBounce loads the bounce configuration.
// Search order: customPath -> ~/.bounce/configs/bounce.yaml -> ./configs/bounce.yaml -> embedded default
func LoadBounce(customPath string) (BounceConfig, error) {
	cfg, _, err := LoadBounceFrom(customPath)
	return cfg, err
}

// LoadBounceFrom is LoadBounce that also reports which source was used.
// Files are decoded over the defaults, so omitted keys keep their default values.
func LoadBounceFrom(customPath string) (BounceConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultBounceConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bounce.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", "bounce.yaml")); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg := DefaultBounceConfig()
	if err := yaml.Unmarshal(defaultBounceYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBounceConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// tryFile loads an optional config file. Missing, unparsable or invalid
// files are skipped so the next source in the search order is used.
func tryFile(path string) (BounceConfig, bool) {
	cfg := DefaultBounceConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// decode picks the decoder by file extension. YAML is the default.
func decode(path string, data []byte, cfg *BounceConfig) error {
	// Explicit paddle lists replace the defaults instead of merging per index.
	cfg.Paddles = nil

	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.Decode(string(data), cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return err
	}
	if len(cfg.Paddles) == 0 {
		cfg.Paddles = DefaultBounceConfig().Paddles
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs", filename)
}

// ApplyBouncePreset modifies the config based on a difficulty preset.
func ApplyBouncePreset(cfg *BounceConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Projectile.Speed = 0.035
		for i := range cfg.Paddles {
			cfg.Paddles[i].Width = 0.4
		}
	case DifficultyHard:
		cfg.Projectile.Speed = 0.07
		for i := range cfg.Paddles {
			cfg.Paddles[i].Width = 0.2
		}
	}
}
