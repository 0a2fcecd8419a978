package systems

import (
	"testing"

	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destroyed(enemyType cfg.EnemyType, pos gamemath.Vector2) components.DestroyedEvent {
	return components.DestroyedEvent{EnemyType: enemyType, Position: pos, Cause: components.CauseBullet}
}

func TestScoringAwardsTierScore(t *testing.T) {
	e := newPlayingECS(t)
	events := GetEvents(e)
	events.Destroyed = append(events.Destroyed,
		destroyed(cfg.EnemySmall, gamemath.Vec(0, 0)),
		destroyed(cfg.EnemyLarge, gamemath.Vec(50, 50)),
	)

	UpdateScoring(e)

	score := GetScore(e)
	assert.Equal(t, 42, score.Value)
	assert.Equal(t, 42, score.HighScore)
	assert.Equal(t, 2, countTagged(e, tags.Explosion))
}

func TestScoringDropsPowerups(t *testing.T) {
	e := newPlayingECS(t)
	events := GetEvents(e)
	events.Destroyed = append(events.Destroyed,
		destroyed(cfg.EnemySmall, gamemath.Vec(0, 0)),
		destroyed(cfg.EnemyMedium, gamemath.Vec(10, 20)),
	)

	UpdateScoring(e)

	assert.Equal(t, 1, GetPowerupCount(e).Count)
	powerup, ok := tags.Powerup.First(e.World)
	require.True(t, ok)
	assert.Equal(t, cfg.PowerupSpeed, components.Powerup.Get(powerup).Type)
	assert.Equal(t, gamemath.Vec(10, 20), components.Transform.Get(powerup).Position)
}

func TestScoringRespectsPowerupCap(t *testing.T) {
	e := newPlayingECS(t)
	GetPowerupCount(e).Count = cfg.Powerup.MaxPowerups
	events := GetEvents(e)
	events.Destroyed = append(events.Destroyed, destroyed(cfg.EnemyLarge, gamemath.Vec(0, 0)))

	UpdateScoring(e)

	assert.Zero(t, countTagged(e, tags.Powerup))
	assert.Equal(t, 40, GetScore(e).Value)
}

func TestScoringIgnoresPlayerDeath(t *testing.T) {
	e := newPlayingECS(t)
	events := GetEvents(e)
	events.Destroyed = append(events.Destroyed, components.DestroyedEvent{Player: true})

	UpdateScoring(e)

	assert.Zero(t, GetScore(e).Value)
	assert.Equal(t, 1, countTagged(e, tags.Explosion))
}

func TestAwardScoreKeepsHigherHighScore(t *testing.T) {
	score := &components.ScoreData{HighScore: 100}
	AwardScore(score, 12)
	assert.Equal(t, 12, score.Value)
	assert.Equal(t, 100, score.HighScore)
}
