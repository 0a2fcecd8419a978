package systems

import (
	"testing"

	"github.com/automoto/starshooter/assets/animations"
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	idleRange      = animations.FrameRange(cfg.PlayerIdleFrames)
	leanLeftRange  = animations.FrameRange(cfg.PlayerTransitionLeftFrames)
	leanRightRange = animations.FrameRange(cfg.PlayerTransitionRightFrames)
	moveLeftRange  = animations.FrameRange(cfg.PlayerMoveLeftFrames)
	moveRightRange = animations.FrameRange(cfg.PlayerMoveRightFrames)
)

func TestNextPlayerState(t *testing.T) {
	assert.Equal(t, cfg.PlayerMovingLeft, NextPlayerState(-0.3))
	assert.Equal(t, cfg.PlayerMovingRight, NextPlayerState(1))
	assert.Equal(t, cfg.PlayerIdle, NextPlayerState(0))
}

func TestTransitionRanges(t *testing.T) {
	tests := []struct {
		name  string
		state cfg.PlayerStateID
		prev  cfg.PlayerStateID
		want  []animations.FrameRange
	}{
		{"left from idle", cfg.PlayerMovingLeft, cfg.PlayerIdle, []animations.FrameRange{moveLeftRange, leanLeftRange}},
		{"right from left", cfg.PlayerMovingRight, cfg.PlayerMovingLeft, []animations.FrameRange{moveRightRange, leanRightRange}},
		{"idle from left", cfg.PlayerIdle, cfg.PlayerMovingLeft, []animations.FrameRange{idleRange, leanLeftRange}},
		{"idle from right", cfg.PlayerIdle, cfg.PlayerMovingRight, []animations.FrameRange{idleRange, leanRightRange}},
		{"idle from idle", cfg.PlayerIdle, cfg.PlayerIdle, []animations.FrameRange{idleRange}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransitionRanges(tt.state, tt.prev))
		})
	}
}

func TestTransitionPlayerState(t *testing.T) {
	e := newPlayingECS(t)
	player := factory.CreatePlayer(e, gamemath.Vec(0, 0))

	assert.False(t, TransitionPlayerState(player, cfg.PlayerIdle))

	require.True(t, TransitionPlayerState(player, cfg.PlayerMovingLeft))
	state := components.State.Get(player)
	assert.Equal(t, cfg.PlayerMovingLeft, state.CurrentState)
	assert.Equal(t, cfg.PlayerIdle, state.PreviousState)

	stack := components.AnimationStack.Get(player)
	assert.Equal(t, []animations.FrameRange{moveLeftRange, leanLeftRange}, stack.Ranges)
	assert.Equal(t, leanLeftRange, components.Animation.Get(player).CurrentAnimation.Range())

	assert.False(t, TransitionPlayerState(player, cfg.PlayerMovingLeft), "self transitions are ignored")
	assert.Equal(t, cfg.PlayerIdle, state.PreviousState)
}

func TestPlayerAnimationPopsAfterTwoCycles(t *testing.T) {
	e := newPlayingECS(t)
	player := factory.CreatePlayer(e, gamemath.Vec(0, 0))
	require.True(t, TransitionPlayerState(player, cfg.PlayerMovingLeft))
	Advance(e, 1.0/cfg.Player.FPS, testWidth, testHeight)

	stack := components.AnimationStack.Get(player)
	anim := components.Animation.Get(player).CurrentAnimation

	// Each cycle of a two frame range takes two ticks.
	for i := 0; i < 3; i++ {
		UpdatePlayerAnimation(e)
		assert.Equal(t, 2, stack.Len(), "tick %d", i)
	}
	UpdatePlayerAnimation(e)
	assert.Equal(t, 1, stack.Len())
	assert.Equal(t, moveLeftRange, anim.Range())
	assert.Equal(t, moveLeftRange.First, anim.Frame())

	for i := 0; i < 8; i++ {
		UpdatePlayerAnimation(e)
	}
	assert.Equal(t, 1, stack.Len(), "the steady state is never popped")
}

func TestUpdatePlayerReadsInput(t *testing.T) {
	e := newPlayingECS(t)
	player := factory.CreatePlayer(e, gamemath.Vec(0, 0))
	Advance(e, 1.0/60, testWidth, testHeight)

	SetActions(getOrCreateInput(e), cfg.ActionMoveLeft, cfg.ActionMoveUp)
	UpdatePlayer(e)

	data := components.Player.Get(player)
	assert.InDelta(t, 1.0, data.Direction.Magnitude(), 1e-9)
	assert.Less(t, data.Direction.X, 0.0)
	assert.Greater(t, data.Direction.Y, 0.0)
	assert.Equal(t, cfg.PlayerMovingLeft, components.State.Get(player).CurrentState)
}

func TestShootingCooldown(t *testing.T) {
	e := newPlayingECS(t)
	player := factory.CreatePlayer(e, gamemath.Vec(0, 0))
	SetActions(getOrCreateInput(e), cfg.ActionFire)

	Advance(e, cfg.Player.ShootCooldown+0.1, testWidth, testHeight)
	UpdatePlayer(e)
	require.Equal(t, 1, countTagged(e, tags.Bullet))
	assert.Equal(t, 1, GetEvents(e).ShotsFired)

	bullet, _ := tags.Bullet.First(e.World)
	assert.Greater(t, components.Transform.Get(bullet).Position.Y, 0.0)

	Advance(e, 0.1, testWidth, testHeight)
	UpdatePlayer(e)
	assert.Equal(t, 1, countTagged(e, tags.Bullet), "still cooling down")

	shoot := components.Shoot.Get(player)
	assert.InDelta(t, cfg.Player.ShootCooldown-0.1, shoot.Timer, 1e-9)
}

func TestShootingFireRate(t *testing.T) {
	e := newPlayingECS(t)
	player := factory.CreatePlayer(e, gamemath.Vec(0, 0))
	components.Player.Get(player).Stats.FireRate = 2
	SetActions(getOrCreateInput(e), cfg.ActionFire)

	Advance(e, cfg.Player.ShootCooldown, testWidth, testHeight)
	UpdatePlayer(e)

	assert.InDelta(t, cfg.Player.ShootCooldown/2, components.Shoot.Get(player).Timer, 1e-9)
}

func TestNoShotWithoutFire(t *testing.T) {
	e := newPlayingECS(t)
	factory.CreatePlayer(e, gamemath.Vec(0, 0))

	Advance(e, 1, testWidth, testHeight)
	UpdatePlayer(e)
	assert.Zero(t, countTagged(e, tags.Bullet))
}
