package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/clony.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.clony/config.yaml -> ./configs/clony.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; broken files in
// the implicit locations are skipped. The result is always validated.
func Load(customPath string) (GameConfig, Source, error) {
	cfg, src, err := load(customPath)
	if err != nil {
		return cfg, src, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, fmt.Errorf("config (%s): %w", src, err)
	}
	return cfg, src, nil
}

func load(customPath string) (GameConfig, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultConfig(), SourceBuiltin, nil
}

// Parse decodes YAML on top of DefaultConfig, so a file only needs the
// keys it changes. Unknown keys are rejected.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	// A speed table in the file replaces the default one entirely.
	cfg.Levels.Speed = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return GameConfig{}, err
	}
	if cfg.Levels.Speed == nil {
		cfg.Levels.Speed = DefaultConfig().Levels.Speed
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clony", "config.yaml")
}
