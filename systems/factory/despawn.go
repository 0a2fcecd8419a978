package factory

import (
	"github.com/automoto/starshooter/components"
	"github.com/yohamta/donburi"
)

// Despawn removes an entity together with its broadphase object and keeps
// the population counters in step. Invalid or already removed entries are
// ignored.
func Despawn(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	if e.HasComponent(components.Enemy) {
		if entry, ok := components.EnemyCount.First(w); ok {
			components.EnemyCount.Get(entry).Decrement(components.Enemy.Get(e).Type)
		}
	}
	if e.HasComponent(components.Powerup) {
		if entry, ok := components.PowerupCount.First(w); ok {
			pc := components.PowerupCount.Get(entry)
			if pc.Count > 0 {
				pc.Count--
			}
		}
	}
	e.Remove()
}

// DespawnEntity is Despawn for a bare identifier. A stale identifier is a no-op.
func DespawnEntity(w donburi.World, id donburi.Entity) {
	if !w.Valid(id) {
		return
	}
	Despawn(w, w.Entry(id))
}
