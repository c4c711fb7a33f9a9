package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// SkipFunc is told about an implicit config file that exists but could not
// be used.
type SkipFunc func(path string, err error)

// LoadRundash loads Rundash configuration.
// Search order: customPath -> ~/.rundash/configs/rundash.yaml -> ./configs/rundash.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read, parsed or validated is an
// error. An implicit location that is missing is skipped quietly; one that
// exists but is unusable is skipped and reported to onSkip, which may be nil.
func LoadRundash(customPath string, onSkip SkipFunc) (RundashConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	candidates := []struct {
		path   string
		source Source
	}{
		{userConfigPath("rundash.yaml"), SourceUser},
		{filepath.Join("configs", "rundash.yaml"), SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		cfg, err := loadFile(c.path)
		if err == nil {
			return cfg, c.source, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && onSkip != nil {
			onSkip(c.path, err)
		}
	}

	cfg := DefaultRundashConfig()
	if err := yaml.Unmarshal(defaultRundashYAML, &cfg); err != nil {
		return DefaultRundashConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads, decodes and validates one YAML file.
func loadFile(path string) (RundashConfig, error) {
	cfg := DefaultRundashConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg RundashConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rundash", "configs", filename)
}
