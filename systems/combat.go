package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/starshooter/components"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// DestroyDead removes every entity whose health reached zero this tick and
// emits one DestroyedEvent for each. Damage has already accumulated, so an
// enemy hit by several bullets dies exactly once. A dead player ends the run.
func DestroyDead(e *ecs.ECS) {
	var dead []*donburi.Entry
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		if !components.Health.Get(entry).Alive() {
			dead = append(dead, entry)
		}
	})
	if len(dead) == 0 {
		return
	}
	dead = sortByEntity(dead)

	events := GetEvents(e)
	playerDied := false
	for _, entry := range dead {
		ev := components.DestroyedEvent{
			Entity:   entry.Entity(),
			Player:   entry.HasComponent(tags.Player),
			Position: components.Transform.Get(entry).Position,
			Cause:    components.Health.Get(entry).LastHitBy,
		}
		if entry.HasComponent(components.Enemy) {
			ev.EnemyType = components.Enemy.Get(entry).Type
		}
		events.Destroyed = append(events.Destroyed, ev)
		playerDied = playerDied || ev.Player

		factory.Despawn(e.World, entry)
	}

	if playerDied {
		zap.L().Debug("player destroyed", zap.Int("destroyed", len(dead)))
		EndRun(e)
	}
}

// sortByEntity orders entries by id and drops duplicates.
func sortByEntity(entries []*donburi.Entry) []*donburi.Entry {
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return cmp.Compare(a.Entity(), b.Entity())
	})
	return slices.CompactFunc(entries, func(a, b *donburi.Entry) bool {
		return a.Entity() == b.Entity()
	})
}
