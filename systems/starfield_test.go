package systems

import (
	"testing"

	cfg "github.com/automoto/starshooter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarfieldEasesToPreset(t *testing.T) {
	e := newPlayingECS(t)
	SetStarfieldPreset(e, cfg.StarSpeedFast)
	sf := getStarfield(e)
	require.NotNil(t, sf.Tween)

	Advance(e, cfg.Starfield.EaseDuration/3, testWidth, testHeight)
	UpdateStarfield(e)
	assert.Greater(t, sf.Speed, cfg.Starfield.Speeds[cfg.StarSpeedSlow])
	assert.Less(t, sf.Speed, cfg.Starfield.Speeds[cfg.StarSpeedFast])

	Advance(e, cfg.Starfield.EaseDuration, testWidth, testHeight)
	UpdateStarfield(e)
	assert.Equal(t, cfg.Starfield.Speeds[cfg.StarSpeedFast], sf.Speed)
	assert.Nil(t, sf.Tween)
}

func TestStarfieldScatterAndWrap(t *testing.T) {
	e := newPlayingECS(t)
	Advance(e, 5, testWidth, testHeight)
	UpdateStarfield(e)

	sf := getStarfield(e)
	require.Len(t, sf.Stars, cfg.Starfield.Stars)
	for _, star := range sf.Stars {
		assert.GreaterOrEqual(t, star.Position.Y, -testHeight/2)
		assert.Less(t, star.Position.Y, testHeight/2)
		assert.GreaterOrEqual(t, star.Position.X, -testWidth/2)
		assert.Less(t, star.Position.X, testWidth/2)
	}
}

func TestStarfieldDriftFollowsInput(t *testing.T) {
	e := newTestECS(t, worldOptions{state: cfg.GameStateReady})
	press(e, cfg.ActionStart)
	SetActions(getOrCreateInput(e), cfg.ActionMoveRight)
	Advance(e, 1, testWidth, testHeight)

	UpdateStarfield(e)
	assert.InDelta(t, cfg.Starfield.DriftRate, getStarfield(e).DirectionModifier, 1e-9)
}
