package systems

import (
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
)

// GetAction returns the temporal state of an action for this frame.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return components.ActionState{}
	}
	cur := input.Current[action]
	prev := input.Previous[action]
	return components.ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// MovementDirection combines digital actions and the analog axis into a
// normalized direction with +Y up.
func MovementDirection(input *components.InputData) gamemath.Vector2 {
	var dir gamemath.Vector2
	if input.Current[cfg.ActionMoveLeft] {
		dir.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		dir.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		dir.Y++
	}
	if input.Current[cfg.ActionMoveDown] {
		dir.Y--
	}
	if dir.X == 0 && dir.Y == 0 {
		dir = input.Axis
	}
	if dir.Magnitude() > 1 {
		dir = dir.Normalized()
	}
	return dir
}

// SetActions replaces the current frame's pressed actions, rolling the old
// frame into Previous. Hosts without a real device use it to drive input.
func SetActions(input *components.InputData, pressed ...cfg.ActionID) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range pressed {
		if a > cfg.ActionNone && a < cfg.ActionCount {
			input.Current[a] = true
		}
	}
}
