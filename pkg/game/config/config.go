// Package config loads generation settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"darkfortress/pkg/engine/logger"
)

// Config holds all generation settings
type Config struct {
	// Seed for random number generation. 0 means pick one from the clock.
	Seed int64 `yaml:"seed"`

	Map      MapConfig      `yaml:"map"`
	Monsters MonstersConfig `yaml:"monsters"`
	Fortress FortressConfig `yaml:"fortress"`
	Log      logger.Config  `yaml:"log"`
}

// MapConfig holds map size and layout settings
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Architecture is "rooms" or "bsp"
	Architecture string `yaml:"architecture"`

	// Rooms is the room count the rooms architecture aims for
	Rooms int `yaml:"rooms"`
}

// MonstersConfig holds ambient monster spawn settings
type MonstersConfig struct {
	Count int `yaml:"count"`

	// MinDistance keeps spawns at least this far (straight line) from the player
	MinDistance float32 `yaml:"min_distance"`
}

// FortressConfig holds prefab placement settings
type FortressConfig struct {
	Enabled bool `yaml:"enabled"`

	// Attempts is the number of random anchors tried before giving up
	Attempts int `yaml:"attempts"`

	// MinDistance and MaxDistance bound the open band of walking distance from
	// the player start that at least one fortress tile must fall into
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`

	// FlowDepth caps the distance search
	FlowDepth float32 `yaml:"flow_depth"`
}

// DefaultConfig returns the settings the game ships with
func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Width:        80,
			Height:       50,
			Architecture: "rooms",
			Rooms:        20,
		},
		Monsters: MonstersConfig{
			Count:       50,
			MinDistance: 10,
		},
		Fortress: FortressConfig{
			Enabled:     true,
			Attempts:    10,
			MinDistance: 50,
			MaxDistance: 2000,
			FlowDepth:   1024,
		},
		Log: logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Validate rejects settings the generator cannot work with
func (c *Config) Validate() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("map size %dx%d must be positive", c.Map.Width, c.Map.Height)
	}
	if c.Monsters.Count < 0 {
		return errors.New("monster count must not be negative")
	}
	if c.Fortress.Attempts < 0 {
		return errors.New("fortress attempts must not be negative")
	}
	if c.Fortress.MinDistance >= c.Fortress.MaxDistance {
		return fmt.Errorf("fortress band (%v, %v) is empty", c.Fortress.MinDistance, c.Fortress.MaxDistance)
	}
	// 0 selects the default depth
	if c.Fortress.FlowDepth > 0 && c.Fortress.FlowDepth <= c.Fortress.MinDistance {
		return fmt.Errorf("fortress flow_depth %v never reaches min_distance %v", c.Fortress.FlowDepth, c.Fortress.MinDistance)
	}
	return nil
}
