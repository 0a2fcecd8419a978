package systems

import (
	"github.com/automoto/starshooter/components"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances looping sprite animations. The player is driven
// by its stack and effects by UpdateEffects.
func UpdateAnimations(e *ecs.ECS) {
	dt := GetClock(e).Delta
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.Player) || entry.HasComponent(components.AutoDestroy) {
			return
		}
		if anim := components.Animation.Get(entry).CurrentAnimation; anim != nil {
			anim.Update(dt)
		}
	})
}
