package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	// Create a temp config file
	content := `
session:
  max_players: 16
  courts: 2
  games_per_rotation: 3
  auto_fill: true

ui:
  sound: false
  auto_fill_interval: 5
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify loaded values
	assert.Equal(t, 16, cfg.Session.MaxPlayers)
	assert.Equal(t, 2, cfg.Session.Courts)
	assert.Equal(t, 3, cfg.Session.GamesPerRotation)
	assert.True(t, cfg.Session.AutoFill)
	assert.False(t, cfg.UI.SoundEnabled())
	assert.Equal(t, 5, cfg.UI.AutoFillInterval)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")
	err := os.WriteFile(configPath, []byte("invalid: yaml: :::"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	// Empty config file - defaults should be applied
	content := `{}`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify defaults are applied
	assert.Equal(t, defaultMaxPlayers, cfg.Session.MaxPlayers)
	assert.Equal(t, defaultCourts, cfg.Session.Courts)
	assert.Equal(t, defaultGamesPerRotation, cfg.Session.GamesPerRotation)
	assert.False(t, cfg.Session.AutoFill)
	assert.True(t, cfg.UI.SoundEnabled())
	assert.Equal(t, defaultAutoFillInterval, cfg.UI.AutoFillInterval)
}

func TestLoad_ExplicitSoundOffSurvivesDefaults(t *testing.T) {
	t.Parallel()

	content := `
ui:
  sound: false
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sound.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.False(t, cfg.UI.SoundEnabled())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg)

	// Verify defaults are set
	assert.Equal(t, defaultMaxPlayers, cfg.Session.MaxPlayers)
	assert.Equal(t, defaultCourts, cfg.Session.Courts)
	assert.Equal(t, defaultGamesPerRotation, cfg.Session.GamesPerRotation)
	assert.True(t, cfg.UI.SoundEnabled())
}

func TestSessionConfig_Settings(t *testing.T) {
	t.Parallel()

	sc := &SessionConfig{
		MaxPlayers:       12,
		Courts:           2,
		GamesPerRotation: 3,
		AutoFill:         true,
	}

	settings := sc.Settings()
	assert.Equal(t, 12, settings.MaxPlayers)
	assert.Equal(t, 2, settings.Courts)
	assert.Equal(t, 3, settings.GamesPerRotation)
	assert.True(t, settings.AutoFill)
}

func TestUIConfig_AutoFillIntervalDuration(t *testing.T) {
	t.Parallel()

	cfg := &UIConfig{AutoFillInterval: 5}
	assert.Equal(t, 5*time.Second, cfg.AutoFillIntervalDuration())
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	path := DefaultPath()
	assert.Contains(t, path, "openplay")
	assert.Contains(t, path, "config.yaml")
}
