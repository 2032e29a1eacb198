package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all parameters for a render.
type Config struct {
	Width     int      `yaml:"width" json:"width"`
	Height    int      `yaml:"height" json:"height"`
	Filename  string   `yaml:"filename" json:"filename"`
	MinDepth  int      `yaml:"min_depth" json:"min_depth"`
	MaxDepth  int      `yaml:"max_depth" json:"max_depth"`
	Pool      string   `yaml:"pool" json:"pool"`
	Operators []string `yaml:"operators,omitempty" json:"operators,omitempty"` // overrides Pool when set
	Seed      int64    `yaml:"seed" json:"seed"`                               // 0 = random
	Workers   int      `yaml:"workers" json:"workers"`
	Gamut     string   `yaml:"gamut" json:"gamut"`   // "wrap" or "clamp"
	Format    string   `yaml:"format" json:"format"` // "text", "json", "latex" or "dot"
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Width:    350,
		Height:   350,
		Filename: "myart.png",
		MinDepth: 7,
		MaxDepth: 9,
		Pool:     "full",
		Seed:     0, // 0 = random
		Workers:  1,
		Gamut:    "wrap",
		Format:   "text",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Unknown keys
// are rejected so typos don't silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}
