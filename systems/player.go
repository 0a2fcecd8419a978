package systems

import (
	"github.com/automoto/starshooter/assets/animations"
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer reads this tick's intent, advances the player state machine
// and fires when the cooldown allows.
func UpdatePlayer(e *ecs.ECS) {
	player, ok := PlayerEntry(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	data := components.Player.Get(player)
	data.Direction = MovementDirection(input)
	data.Firing = GetAction(input, cfg.ActionFire).Pressed

	TransitionPlayerState(player, NextPlayerState(data.Direction.X))
	updateShooting(e, player, GetClock(e).Delta)
}

// NextPlayerState maps the sign of the horizontal intent to a state.
func NextPlayerState(dirX float64) cfg.PlayerStateID {
	switch {
	case dirX < 0:
		return cfg.PlayerMovingLeft
	case dirX > 0:
		return cfg.PlayerMovingRight
	}
	return cfg.PlayerIdle
}

// TransitionPlayerState moves the player into next and rebuilds the
// animation stack. Self transitions are ignored. It reports whether the
// state changed.
func TransitionPlayerState(player *donburi.Entry, next cfg.PlayerStateID) bool {
	state := components.State.Get(player)
	if state.CurrentState == next {
		return false
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next

	stack := components.AnimationStack.Get(player)
	stack.Reset(TransitionRanges(next, state.PreviousState)...)
	if top, ok := stack.Top(); ok {
		components.Animation.Get(player).CurrentAnimation.SetRange(top)
	}
	return true
}

// TransitionRanges lists the stack layers for entering state from prev: the
// steady loop first, then the lean played on top of it.
func TransitionRanges(state, prev cfg.PlayerStateID) []animations.FrameRange {
	idle := animations.FrameRange(cfg.PlayerIdleFrames)
	leanLeft := animations.FrameRange(cfg.PlayerTransitionLeftFrames)
	leanRight := animations.FrameRange(cfg.PlayerTransitionRightFrames)

	switch state {
	case cfg.PlayerMovingLeft:
		return []animations.FrameRange{animations.FrameRange(cfg.PlayerMoveLeftFrames), leanLeft}
	case cfg.PlayerMovingRight:
		return []animations.FrameRange{animations.FrameRange(cfg.PlayerMoveRightFrames), leanRight}
	}
	switch prev {
	case cfg.PlayerMovingLeft:
		return []animations.FrameRange{idle, leanLeft}
	case cfg.PlayerMovingRight:
		return []animations.FrameRange{idle, leanRight}
	}
	return []animations.FrameRange{idle}
}

func updateShooting(e *ecs.ECS, player *donburi.Entry, dt float64) {
	shoot := components.Shoot.Get(player)
	data := components.Player.Get(player)

	shoot.Timer -= dt
	if !data.Firing || shoot.Timer > 0 {
		return
	}
	shoot.Timer = shoot.AdjustedCooldown(data.Stats.FireRate)

	t := components.Transform.Get(player)
	b := components.Bounds.Get(player)
	muzzle := t.Position.Add(gamemath.Vec(0, b.Size.Y/2))
	factory.CreateBullet(e, muzzle)
	GetEvents(e).ShotsFired++
}

// UpdatePlayerAnimation plays the top of the player's animation stack and
// pops finished transition layers.
func UpdatePlayerAnimation(e *ecs.ECS) {
	player, ok := PlayerEntry(e)
	if !ok {
		return
	}
	anim := components.Animation.Get(player).CurrentAnimation
	if anim == nil {
		return
	}
	stack := components.AnimationStack.Get(player)
	if top, ok := stack.Top(); ok {
		anim.SetRange(top)
	}

	completed := anim.Update(GetClock(e).Delta)
	for i := 0; i < completed; i++ {
		if stack.CompleteCycle() {
			if top, ok := stack.Top(); ok {
				anim.SetRange(top)
			}
			break
		}
	}
}
