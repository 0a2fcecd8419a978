package systems

import (
	"github.com/automoto/starshooter/components"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances one-shot visual effects and removes finished ones.
func UpdateEffects(ecs *ecs.ECS) {
	updateVFXAnimations(ecs)
	updateAutoDestroy(ecs)
}

// updateVFXAnimations steps effect animations, which UpdateAnimations skips.
func updateVFXAnimations(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta
	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) {
			return
		}
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}
	})
}

// updateAutoDestroy removes effects whose timer ran out or whose animation
// finished a play-through.
func updateAutoDestroy(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta
	var toRemove []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)

		if ad.DestroyOnAnimLoop && e.HasComponent(components.Animation) {
			anim := components.Animation.Get(e)
			if anim.CurrentAnimation != nil && anim.CurrentAnimation.Looped {
				toRemove = append(toRemove, e)
			}
			return
		}

		if ad.SecondsRemaining > 0 {
			ad.SecondsRemaining -= dt
			if ad.SecondsRemaining <= 0 {
				toRemove = append(toRemove, e)
			}
		}
	})

	for _, e := range toRemove {
		factory.Despawn(ecs.World, e)
	}
}
