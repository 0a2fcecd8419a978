package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionPause
	ActionStart
	ActionRestart
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the physical inputs that trigger one action.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds the action bindings and stick tuning
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionFire: {
				Keys:                   []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionPause: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionStart: {
				Keys:                   []ebiten.Key{ebiten.KeyEnter},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionRestart: {
				Keys:                   []ebiten.Key{ebiten.KeyR},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyQ},
			},
		},
	}
}
