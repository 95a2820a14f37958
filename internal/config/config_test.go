package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tickwheel/internal/wheel"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SchemaVersion, cfg.Version)
	assert.Equal(t, HourCycleAuto, cfg.Picker.HourCycle)
	assert.Equal(t, wheel.DefaultPhysics(), cfg.Physics.ToPhysics())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
picker:
  hour_cycle: "12"
logging:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "12", cfg.Picker.HourCycle)
	assert.True(t, cfg.Picker.Loop, "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, path, cfg.Path())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("picker: [\n"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
	cfg := Default()
	cfg.SetPath(path)
	cfg.Picker.YearSpan = 20
	cfg.Physics.ScrollIdle = 80 * time.Millisecond

	assert.False(t, cfg.Exists())
	require.NoError(t, cfg.Save())
	assert.True(t, cfg.Exists())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Picker, loaded.Picker)
	assert.Equal(t, cfg.Physics, loaded.Physics)
	assert.Equal(t, cfg.Logging, loaded.Logging)
}

func TestSave_NoPath(t *testing.T) {
	assert.Error(t, Default().Save())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TICKWHEEL_HOUR_CYCLE":   " 24 ",
		"TICKWHEEL_LOOP":         "false",
		"TICKWHEEL_LOG_LEVEL":    "warn",
		"TICKWHEEL_PRESENTATION": "embedded",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnv(lookup)
	assert.Equal(t, "24", cfg.Picker.HourCycle)
	assert.False(t, cfg.Picker.Loop)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, PresentationEmbedded, cfg.Picker.Presentation)
	assert.Equal(t, "json", cfg.Logging.Format)

	env["TICKWHEEL_LOOP"] = "maybe"
	cfg.Picker.Loop = true
	cfg.ApplyEnv(lookup)
	assert.True(t, cfg.Picker.Loop, "unparseable booleans are ignored")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"future major", func(c *Config) { c.Version = "2.0.0" }, ErrUnsupportedVersion},
		{"garbage version", func(c *Config) { c.Version = "one" }, ErrUnsupportedVersion},
		{"hour cycle", func(c *Config) { c.Picker.HourCycle = "13" }, ErrInvalidHourCycle},
		{"presentation", func(c *Config) { c.Picker.Presentation = "popover" }, ErrInvalidPresentation},
		{"row height", func(c *Config) { c.Picker.RowHeight = -1 }, ErrInvalidGeometry},
		{"year span", func(c *Config) { c.Picker.YearSpan = 500 }, ErrInvalidYearSpan},
		{"friction", func(c *Config) { c.Physics.Friction = 1.2 }, ErrInvalidPhysics},
		{"snap range", func(c *Config) { c.Physics.SnapMin = time.Second }, ErrInvalidPhysics},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogging},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, ErrInvalidLogging},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("minor versions accepted", func(t *testing.T) {
		cfg := Default()
		cfg.Version = "1.4.2"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("errors are joined", func(t *testing.T) {
		cfg := Default()
		cfg.Picker.HourCycle = "x"
		cfg.Logging.Format = "y"
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidHourCycle)
		assert.ErrorIs(t, err, ErrInvalidLogging)
	})
}
