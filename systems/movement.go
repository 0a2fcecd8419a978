package systems

import (
	"github.com/automoto/starshooter/components"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates every moving entity, keeps the player inside the
// viewport, removes anything that left the screen and refreshes broadphase
// objects.
func UpdateMovement(e *ecs.ECS) {
	dt := GetClock(e).Delta
	vp := GetViewport(e)

	var offscreen []*donburi.Entry

	components.Velocity.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		speed := components.MovementSpeed.Get(entry).Speed
		dir := components.Velocity.Get(entry).Direction

		if entry.HasComponent(tags.Player) {
			player := components.Player.Get(entry)
			dir = player.Direction
			components.Velocity.Get(entry).Direction = dir
			speed *= player.Stats.Speed
		}

		t.Position = gamemath.Integrate(t.Position, dir, speed, dt)

		if !vp.Valid() {
			return
		}
		switch {
		case entry.HasComponent(tags.Player):
			size := components.Bounds.Get(entry).Size
			t.Position = gamemath.ConfineToViewport(t.Position, size, vp.Width, vp.Height)
		case entry.HasComponent(tags.Bullet):
			if t.Position.Y > vp.Height/2 {
				offscreen = append(offscreen, entry)
			}
		case entry.HasComponent(tags.Enemy), entry.HasComponent(tags.Powerup):
			if t.Position.Y < -vp.Height/2 {
				offscreen = append(offscreen, entry)
			}
		}
	})

	for _, entry := range offscreen {
		factory.Despawn(e.World, entry)
	}

	SyncObjects(e)
}

// SyncObjects moves every broadphase object to its entity's current box.
func SyncObjects(e *ecs.ECS) {
	vp := GetViewport(e)
	if !vp.Valid() {
		return
	}
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Object == nil || !entry.HasComponent(components.Transform) || !entry.HasComponent(components.Bounds) {
			return
		}
		t := components.Transform.Get(entry)
		b := components.Bounds.Get(entry)
		factory.PlaceObject(obj.Object, t.Position, b.Size, vp.Width, vp.Height)
	})
}
