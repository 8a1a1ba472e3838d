package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Default option values.
const (
	DefaultCellWidth  = 1.0
	DefaultCellHeight = 1.0
	DefaultRegionGap  = 1.0
)

// Layout holds the grid metrics and region spacing.
type Layout struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	RegionGap  float64 `toml:"region_gap"`
}

// Config is the full configuration tree.
type Config struct {
	Layout Layout `toml:"layout"`
	Theme  string `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: Layout{
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
			RegionGap:  DefaultRegionGap,
		},
	}
}

// Load reads configuration from the given path, merged over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	if c.Layout.CellWidth <= 0 {
		c.Layout.CellWidth = DefaultCellWidth
	}
	if c.Layout.CellHeight <= 0 {
		c.Layout.CellHeight = DefaultCellHeight
	}
	if c.Layout.RegionGap < 0 {
		c.Layout.RegionGap = DefaultRegionGap
	}
}
