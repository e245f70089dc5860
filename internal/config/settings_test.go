package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValuesWithoutFile(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "spaceshooter.log", s.LogFile)
	assert.Equal(t, "balanced", s.Ship)
	assert.Equal(t, "json", s.HighScores.Backend)
	assert.Equal(t, "highscores.json", s.HighScores.Path)
	assert.True(t, s.Audio.Enabled)
	assert.Empty(t, s.Audio.Music)
	assert.InDelta(t, 0.4, s.Audio.Volume, 1e-9)
	assert.InDelta(t, 1.0, s.Display.Brightness, 1e-9)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"ship": "fast",
		"highscores": { "backend": "sqlite", "path": "scores.db" },
		"audio": { "enabled": false, "volume": 0.8 },
		"display": { "brightness": 0.5 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "fast", s.Ship)
	assert.Equal(t, "sqlite", s.HighScores.Backend)
	assert.Equal(t, "scores.db", s.HighScores.Path)
	assert.False(t, s.Audio.Enabled)
	assert.InDelta(t, 0.8, s.Audio.Volume, 1e-9)
	assert.InDelta(t, 0.5, s.Display.Brightness, 1e-9)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"audio": {"volume": 0.8}}`), 0o644))
	t.Setenv("SHOOTER_AUDIO_VOLUME", "0.1")
	t.Setenv("SHOOTER_SHIP", "fast")

	s, err := Load(dir)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, s.Audio.Volume, 1e-9)
	assert.Equal(t, "fast", s.Ship)
}

func TestLoad_ClampsRanges(t *testing.T) {
	dir := t.TempDir()
	cfg := `{"audio": {"volume": 3}, "display": {"brightness": 0}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Audio.Volume, 1e-9)
	assert.InDelta(t, MinBrightness, s.Display.Brightness, 1e-9)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{broken`), 0o644))
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"highscores": {"backend": "redis"}}`), 0o644))
	_, err = Load(dir)
	assert.ErrorContains(t, err, "redis")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SHOOTER_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("SHOOTER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SHOOTER_TEST_MISSING", "fallback"))
}
