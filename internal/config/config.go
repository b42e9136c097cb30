package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"
)

const (
	defaultPath       = "configs/aoc.yaml"
	defaultLogLevel   = "info"
	defaultWindowSize = 3
)

// Config is the runtime configuration shared by the puzzle binaries.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	Depth    DepthConfig `yaml:"depth"`
}

// DepthConfig tunes the depth-increase puzzle.
type DepthConfig struct {
	WindowSize int `yaml:"window_size"`
}

// Load reads the YAML file named by AOC_CONFIG_PATH, or configs/aoc.yaml when
// unset. A missing default file is not an error; a missing explicit one is.
// LOG_LEVEL overrides the file.
func Load() (*Config, error) {
	path := os.Getenv("AOC_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile decodes a single YAML file without defaults or env overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %q: %w", path, err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Depth.WindowSize == 0 {
		cfg.Depth.WindowSize = defaultWindowSize
	}
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Depth.WindowSize < 1 {
		return fmt.Errorf("depth.window_size must be at least 1, got %d", c.Depth.WindowSize)
	}
	return nil
}
