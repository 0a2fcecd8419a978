package systems

import (
	"testing"

	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	SetActions(getOrCreateInput(e), actions...)
	UpdateGameState(e)
}

func TestStartFromReady(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	UpdateGameState(e)
	assert.False(t, GetGameState(e).Active)

	press(e, cfg.ActionStart)

	gs := GetGameState(e)
	assert.Equal(t, cfg.GameStatePlaying, gs.Current)
	assert.True(t, gs.Active)
	assert.Equal(t, 1, gs.Runs)
	assert.NotEmpty(t, gs.RunID)
	assert.Equal(t, 1, countTagged(e, tags.Player))
	assert.Equal(t, cfg.StarSpeedFast, getStarfield(e).Preset)
}

func TestStartWhilePlayingIsIgnored(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	press(e, cfg.ActionStart)
	GetScore(e).Value = 30
	press(e)
	press(e, cfg.ActionStart)

	assert.Equal(t, 1, GetGameState(e).Runs)
	assert.Equal(t, 30, GetScore(e).Value)
}

func TestPauseToggle(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	press(e, cfg.ActionStart)
	press(e)

	press(e, cfg.ActionPause)
	assert.Equal(t, cfg.GameStatePaused, GetGameState(e).Current)
	assert.False(t, GetGameState(e).Active)
	assert.Equal(t, cfg.StarSpeedStop, getStarfield(e).Preset)

	press(e, cfg.ActionPause)
	assert.Equal(t, cfg.GameStatePaused, GetGameState(e).Current, "held key does not toggle again")

	press(e)
	press(e, cfg.ActionPause)
	assert.Equal(t, cfg.GameStatePlaying, GetGameState(e).Current)
	assert.Equal(t, 1, GetGameState(e).Runs, "resuming is not a new run")
}

func TestRestartFromGameOver(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	press(e, cfg.ActionStart)
	firstRun := GetGameState(e).RunID

	score := GetScore(e)
	score.Value = 54
	score.HighScore = 54
	factory.CreateEnemy(e, cfg.EnemyMedium, gamemath.Vec(0, 200))
	factory.CreatePowerup(e, cfg.PowerupSpeed, gamemath.Vec(100, 100))
	factory.CreateBullet(e, gamemath.Vec(0, 100))
	EndRun(e)
	require.Equal(t, cfg.GameStateGameOver, GetGameState(e).Current)

	press(e, cfg.ActionRestart)

	gs := GetGameState(e)
	assert.Equal(t, cfg.GameStatePlaying, gs.Current)
	assert.Equal(t, 2, gs.Runs)
	assert.NotEqual(t, firstRun, gs.RunID)
	assert.Zero(t, GetScore(e).Value)
	assert.Equal(t, 54, GetScore(e).HighScore)
	assert.Zero(t, GetEnemyCount(e).Total())
	assert.Zero(t, GetPowerupCount(e).Count)
	assert.Zero(t, countEnemies(e))
	assert.Zero(t, countTagged(e, tags.Powerup))
	assert.Zero(t, countTagged(e, tags.Bullet))
	assert.Equal(t, 1, countTagged(e, tags.Player))
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	press(e, cfg.ActionStart)
	GetScore(e).Value = 12

	Signal(e, cfg.SignalRestart)
	UpdateGameState(e)

	assert.Equal(t, 1, GetGameState(e).Runs)
	assert.Equal(t, 12, GetScore(e).Value)
}

func TestQuit(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	press(e, cfg.ActionStart)
	press(e, cfg.ActionQuit)

	gs := GetGameState(e)
	assert.True(t, gs.QuitRequested)
	assert.False(t, gs.Active)
}

func TestWithGameplayChecks(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	UpdateGameState(e)
	system(e)
	assert.Zero(t, calls)

	press(e, cfg.ActionStart)
	system(e)
	assert.Equal(t, 1, calls)

	press(e)
	press(e, cfg.ActionPause)
	system(e)
	assert.Equal(t, 1, calls)
}

func TestEndRunSwitchesStarfield(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	press(e, cfg.ActionStart)
	EndRun(e)

	assert.Equal(t, cfg.GameStateGameOver, GetGameState(e).Current)
	assert.Equal(t, cfg.StarSpeedSlow, getStarfield(e).Preset)
	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundGameOver)
}
