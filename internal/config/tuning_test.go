package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	tuning, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", tuning.LogLevel)
	assert.Equal(t, 5.0, tuning.Tank.MoveSpeed)
	assert.Equal(t, 0.5, tuning.Tank.FireRate)
	assert.Equal(t, 1.0, tuning.Tank.SpinDuration)
	assert.Equal(t, 3, tuning.Tank.SpinRotations)
	assert.Equal(t, 5.0, tuning.Bullet.Lifetime)
	assert.Equal(t, 1.5, tuning.Bullet.MaxSpeedFactor)
	assert.Equal(t, 3, tuning.Spread.MinBullets)
	assert.Equal(t, 7, tuning.Spread.MaxBullets)
	assert.Equal(t, 5, tuning.Match.ScoreToWin)
	assert.Equal(t, 3, tuning.Spawner.MaxPowerUps)
	assert.Equal(t, -8.0, tuning.Spawner.AreaMinX)
	assert.Equal(t, "localhost:8787", tuning.Spectator.Addr)
	assert.True(t, tuning.Telemetry.Enabled)
	assert.Equal(t, 30.0, tuning.Telemetry.Interval)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"tank": { "spinRotations": 2, "bulletSpeed": 8 },
		"match": { "scoreToWin": 3 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(cfg), 0o644))

	tuning, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", tuning.LogLevel)
	assert.Equal(t, 2, tuning.Tank.SpinRotations)
	assert.Equal(t, 8.0, tuning.Tank.BulletSpeed)
	assert.Equal(t, 3, tuning.Match.ScoreToWin)
	// untouched keys keep their defaults
	assert.Equal(t, 5.0, tuning.Tank.MoveSpeed)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TANKS_MATCH_SCORETOWIN", "9")

	tuning, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9, tuning.Match.ScoreToWin)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{broken`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidTuning(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"tank": {"spinDuration": 0}}`), 0o644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "spinDuration")
}

func TestLoad_TelemetryToggle(t *testing.T) {
	t.Setenv("TANKS_TELEMETRY_ENABLED", "false")

	tuning, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, tuning.Telemetry.Enabled)
}

func TestLoad_RejectsZeroTelemetryInterval(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"telemetry": {"interval": 0}}`), 0o644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "telemetry.interval")
}

func TestDefault(t *testing.T) {
	tuning := Default()
	assert.NoError(t, tuning.Validate())
	assert.Equal(t, 0.8, tuning.Shield.Radius)
}
