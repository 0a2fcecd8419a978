package components

import (
	"github.com/automoto/starshooter/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
}

// Frame is the sheet index to draw, or 0 when nothing is playing.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
var AnimationStack = donburi.NewComponentType[animations.Stack]()
