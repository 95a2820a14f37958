// Package config loads, validates and persists tickwheel settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/tickwheel/internal/timeconv"
	"github.com/rshade/tickwheel/internal/wheel"
)

// SchemaVersion is the config schema version written by this build.
const SchemaVersion = "1.0.0"

// ConfigFileName is the name of the config file inside the config directory.
const ConfigFileName = "config.yaml"

// Hour cycle settings.
const (
	HourCycle12   = "12"
	HourCycle24   = "24"
	HourCycleAuto = "auto"
)

// Presentation settings.
const (
	PresentationModal    = "modal"
	PresentationEmbedded = "embedded"
)

const outputTypeFile = "file"

// Config is the full tickwheel configuration.
type Config struct {
	Version string        `yaml:"version"`
	Picker  PickerConfig  `yaml:"picker"`
	Physics PhysicsConfig `yaml:"physics"`
	Logging LoggingConfig `yaml:"logging"`

	// path is where the config was loaded from and where Save writes.
	path string
}

// PickerConfig controls picker layout and display.
type PickerConfig struct {
	// HourCycle is "12", "24" or "auto".
	HourCycle string `yaml:"hour_cycle"`
	// Locale is a BCP 47 tag used when HourCycle is "auto". Empty reads $LANG.
	Locale       string  `yaml:"locale,omitempty"`
	Loop         bool    `yaml:"loop"`
	RowHeight    float64 `yaml:"row_height"`
	VisibleRows  int     `yaml:"visible_rows"`
	YearSpan     int     `yaml:"year_span"`
	Presentation string  `yaml:"presentation"`
}

// PhysicsConfig mirrors wheel.Physics. Zero values use the built-in defaults.
type PhysicsConfig struct {
	Friction           float64       `yaml:"friction"`
	MinReleaseVelocity float64       `yaml:"min_release_velocity"`
	MinVelocity        float64       `yaml:"min_velocity"`
	VelocityWindow     time.Duration `yaml:"velocity_window"`
	SnapPerRow         time.Duration `yaml:"snap_per_row"`
	SnapMin            time.Duration `yaml:"snap_min"`
	SnapMax            time.Duration `yaml:"snap_max"`
	TapThreshold       float64       `yaml:"tap_threshold"`
	ScrollIdle         time.Duration `yaml:"scroll_idle"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// ToPhysics converts the section to engine constants.
func (p PhysicsConfig) ToPhysics() wheel.Physics {
	return wheel.Physics{
		Friction:           p.Friction,
		MinReleaseVelocity: p.MinReleaseVelocity,
		MinVelocity:        p.MinVelocity,
		VelocityWindow:     p.VelocityWindow,
		SnapPerRow:         p.SnapPerRow,
		SnapMin:            p.SnapMin,
		SnapMax:            p.SnapMax,
		TapThreshold:       p.TapThreshold,
		ScrollIdle:         p.ScrollIdle,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	p := wheel.DefaultPhysics()
	return &Config{
		Version: SchemaVersion,
		Picker: PickerConfig{
			HourCycle:    HourCycleAuto,
			Loop:         true,
			RowHeight:    wheel.DefaultRowHeight,
			VisibleRows:  wheel.DefaultVisibleRows,
			YearSpan:     timeconv.DefaultYearSpan,
			Presentation: PresentationModal,
		},
		Physics: PhysicsConfig{
			Friction:           p.Friction,
			MinReleaseVelocity: p.MinReleaseVelocity,
			MinVelocity:        p.MinVelocity,
			VelocityWindow:     p.VelocityWindow,
			SnapPerRow:         p.SnapPerRow,
			SnapMin:            p.SnapMin,
			SnapMax:            p.SnapMax,
			TapThreshold:       p.TapThreshold,
			ScrollIdle:         p.ScrollIdle,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// New returns the defaults overlaid with the user's config file, if any, and
// TICKWHEEL_* environment overrides. Unreadable files are ignored so the
// program always starts.
func New() *Config {
	cfg := Default()
	if dir, err := GetConfigDir(); err == nil {
		cfg.path = filepath.Join(dir, ConfigFileName)
		if loaded, loadErr := Load(cfg.path); loadErr == nil {
			cfg = loaded
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// Load reads the config at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file the config is bound to.
func (c *Config) Path() string {
	return c.path
}

// SetPath binds the config to a file for Save.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Save writes the config to its path, creating the parent directory.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.path, err)
	}
	return nil
}

// Exists reports whether the config file is present.
func (c *Config) Exists() bool {
	if c.path == "" {
		return false
	}
	_, err := os.Stat(c.path)
	return !errors.Is(err, fs.ErrNotExist)
}

// ApplyEnv applies TICKWHEEL_* overrides read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("TICKWHEEL_HOUR_CYCLE"); ok && v != "" {
		c.Picker.HourCycle = strings.TrimSpace(v)
	}
	if v, ok := lookup("TICKWHEEL_LOCALE"); ok && v != "" {
		c.Picker.Locale = v
	}
	if v, ok := lookup("TICKWHEEL_LOOP"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Picker.Loop = b
		}
	}
	if v, ok := lookup("TICKWHEEL_PRESENTATION"); ok && v != "" {
		c.Picker.Presentation = v
	}
	if v, ok := lookup("TICKWHEEL_LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup("TICKWHEEL_LOG_FORMAT"); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup("TICKWHEEL_LOG_FILE"); ok {
		c.Logging.File = v
	}
}
