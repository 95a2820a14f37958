package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv("TICKWHEEL_HOME", t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, HourCycleAuto, cfg.Picker.HourCycle)

	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestGlobalConfig_ReadsHomeAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TICKWHEEL_HOME", home)
	t.Setenv("TICKWHEEL_LOG_FORMAT", "console")
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFileName),
		[]byte("picker:\n  hour_cycle: \"24\"\n"), 0o600))
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	assert.Equal(t, "24", cfg.Picker.HourCycle)
	assert.Equal(t, "console", GetLoggingConfig().Format)
	assert.Equal(t, filepath.Join(home, ConfigFileName), cfg.Path())
}

func TestGetConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("TICKWHEEL_HOME", "/opt/tw")
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/opt/tw", dir)
	})

	t.Run("home default", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("TICKWHEEL_HOME", "")
		t.Setenv("HOME", home)
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".tickwheel"), dir)

		path, err := GetConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".tickwheel", ConfigFileName), path)
	})
}

func TestEnsureDirs(t *testing.T) {
	home := filepath.Join(t.TempDir(), "tw")
	t.Setenv("TICKWHEEL_HOME", home)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	require.NoError(t, EnsureConfigDir())
	assert.DirExists(t, home)

	require.NoError(t, EnsureLogDir(), "no log file configured")

	logFile := filepath.Join(home, "logs", "tickwheel.log")
	GetGlobalConfig().Logging.File = logFile
	require.NoError(t, EnsureLogDir())
	assert.DirExists(t, filepath.Dir(logFile))
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "console"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)
	assert.Equal(t, "debug", out.Level)

	lc.File = "/tmp/tw.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/tw.log", out.File)
}
