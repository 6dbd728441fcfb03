package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	configDirName  = ".config"
	appDirName     = "tilegrid"
	configFileName = "config.toml"
	logFileName    = "tilegrid.log"
)

// Config is the contents of config.toml.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Grid   GridConfig   `toml:"grid"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// LayoutConfig sizes the panel tree on screen.
type LayoutConfig struct {
	// Cells per minimum-size unit
	UnitWidth  int `toml:"unit_width"`
	UnitHeight int `toml:"unit_height"`
	// Divider thickness in cells
	Gap int `toml:"gap"`
	// Resize floor in cells
	MinSize float64 `toml:"min_size"`
	// Size given to both children when a panel becomes a split
	LeafSize float64 `toml:"leaf_size"`
	// Only count splits on a node's own ancestor path when computing
	// minimum sizes
	ScopedMinimums bool `toml:"scoped_minimums"`
}

// GridConfig controls the track grid view.
type GridConfig struct {
	// Track pixels drawn as one terminal cell
	CellPixels int `toml:"cell_pixels"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `toml:"level"`
	// Empty disables logging
	File string `toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{
		Layout: LayoutConfig{
			UnitWidth:  8,
			UnitHeight: 3,
			Gap:        1,
			MinSize:    8,
			LeafSize:   500,
		},
		Grid: GridConfig{
			CellPixels: 20,
		},
		UI: UIConfig{
			Theme: "Midnight Miami",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
	if dir, err := Dir(); err == nil {
		cfg.Log.File = filepath.Join(dir, logFileName)
	}
	return cfg
}

// Dir returns the configuration directory (~/.config/tilegrid).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, appDirName), nil
}

// DefaultPath returns the path of the global config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file at path. A missing file yields the defaults
// and no error. A file that cannot be parsed yields the defaults and the
// parse error. Individual values that are out of range fall back to their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg.sanitized(), nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (c Config) sanitized() Config {
	def := Default()

	if c.Layout.UnitWidth < 1 {
		c.Layout.UnitWidth = def.Layout.UnitWidth
	}
	if c.Layout.UnitHeight < 1 {
		c.Layout.UnitHeight = def.Layout.UnitHeight
	}
	if c.Layout.Gap < 1 {
		c.Layout.Gap = def.Layout.Gap
	}
	if c.Layout.MinSize < 0 {
		c.Layout.MinSize = def.Layout.MinSize
	}
	if c.Layout.LeafSize <= 0 {
		c.Layout.LeafSize = def.Layout.LeafSize
	}
	if c.Grid.CellPixels < 1 {
		c.Grid.CellPixels = def.Grid.CellPixels
	}
	if strings.TrimSpace(c.UI.Theme) == "" {
		c.UI.Theme = def.UI.Theme
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		c.Log.Level = def.Log.Level
	}
	return c
}
