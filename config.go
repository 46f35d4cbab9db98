package aoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when --config is
// not given.
const DefaultConfigFile = "aoc.yaml"

// Config holds the settings that can be kept in a config file rather than
// passed as flags every run. Flags given on the command line win.
type Config struct {
	// InputDir is the root of the input tree; a day's input is read from
	// InputDir/<year>/<day>.input.
	InputDir   string `yaml:"input_dir"`
	Debug      bool   `yaml:"debug"`
	SkipSample bool   `yaml:"skip_sample"`
}

func DefaultConfig() *Config {
	return &Config{InputDir: "."}
}

// LoadConfig reads the config at path. A missing file is not an error and
// yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "."
	}
	return cfg, nil
}
