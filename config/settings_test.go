package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, C.Width, s.Window.Width)
	assert.Equal(t, C.Height, s.Window.Height)
	assert.Equal(t, Audio.DefaultSFXVol, *s.EffectVolume)
	assert.Equal(t, "mutual-damage", s.CollisionPolicy)
	assert.Equal(t, Spawn.MaxEnemies, s.MaxEnemies)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadSettingsFile(t *testing.T) {
	path := writeSettings(t, `
window:
  width: 800
  height: 600
effect_volume: 0
collision_policy: instant-game-over
max_powerups: 5
`)
	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, 0.0, *s.EffectVolume)
	assert.Equal(t, 5, s.MaxPowerups)

	p, err := ParseCollisionPolicy(s.CollisionPolicy)
	require.NoError(t, err)
	assert.Equal(t, CollisionInstantGameOver, p)
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"volume":  "music_volume: 1.5\n",
		"policy":  "collision_policy: bounce\n",
		"window":  "window:\n  width: -1\n",
		"enemies": "max_enemies: -3\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSettings(writeSettings(t, body))
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnemyTableIsStatic(t *testing.T) {
	assert.Equal(t, 2, EnemySmall.Config().Health)
	assert.Equal(t, 12, EnemyMedium.Config().Score)
	assert.Equal(t, 0.1, EnemyLarge.Config().SpawnWeight)
	assert.False(t, EnemySmall.Config().HasDrop)
	assert.Equal(t, PowerupSpeed, EnemyMedium.Config().Drop)
	assert.Equal(t, PowerupFireRate, EnemyLarge.Config().Drop)

	w, h := EnemyMedium.Config().Size()
	assert.Equal(t, 64.0, w)
	assert.Equal(t, 32.0, h)
	assert.Equal(t, "small", EnemyType(99).String())
}
