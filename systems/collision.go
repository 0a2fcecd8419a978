package systems

import (
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves this tick's contacts in a fixed order: bullets
// against enemies, then the player against enemies, then the health sweep,
// then powerup pickups. Every phase is a no-op on empty sets.
func UpdateCollisions(e *ecs.ECS) {
	resolveBulletHits(e)
	resolvePlayerContacts(e)
	DestroyDead(e)
	resolvePowerupPickups(e)
}

func resolveBulletHits(e *ecs.ECS) {
	var spent []*donburi.Entry

	tags.Bullet.Each(e.World, func(bullet *donburi.Entry) {
		target := firstOverlapping(e, bullet, tags.ResolvEnemy, tags.Enemy)
		if target == nil {
			return
		}
		hp := components.Health.Get(target)
		hp.Current -= components.Bullet.Get(bullet).Damage
		hp.LastHitBy = components.CauseBullet
		spent = append(spent, bullet)
	})

	// Bullets never pierce; all damage lands before the health sweep.
	for _, bullet := range spent {
		factory.Despawn(e.World, bullet)
	}
	GetEvents(e).BulletHits += len(spent)
}

func resolvePlayerContacts(e *ecs.ECS) {
	player, ok := PlayerEntry(e)
	if !ok {
		return
	}
	playerBox := entityBox(player)
	playerHP := components.Health.Get(player)
	events := GetEvents(e)

	for _, enemy := range overlapping(e, player, tags.ResolvEnemy, tags.Enemy) {
		enemyHP := components.Health.Get(enemy)
		// Enemies shot down earlier this tick are already out of play.
		if !enemyHP.Alive() {
			continue
		}
		enemyBox := entityBox(enemy)
		side, _ := gamemath.Collide(enemyBox, playerBox)

		switch cfg.Combat.Policy {
		case cfg.CollisionInstantGameOver:
			playerHP.Current = 0
			playerHP.LastHitBy = components.CauseCollision
		default:
			if !playerHP.Alive() {
				continue
			}
			p, q := playerHP.Current, enemyHP.Current
			playerHP.Current -= q
			enemyHP.Current -= p
			playerHP.LastHitBy = components.CauseCollision
			enemyHP.LastHitBy = components.CauseCollision
		}

		events.Collisions = append(events.Collisions, components.CollisionEvent{
			Enemy:    enemy.Entity(),
			Side:     side,
			Position: enemyBox.Center,
		})
	}
}

func entityBox(entry *donburi.Entry) gamemath.AABB {
	return components.Bounds.Get(entry).AABB(components.Transform.Get(entry))
}

// overlapping returns every entity of the given kind whose box overlaps
// subject, ordered by entity id. The broadphase space narrows candidates
// when available; the AABB test decides.
func overlapping(e *ecs.ECS, subject *donburi.Entry, resolvTag string, tag taggedSet) []*donburi.Entry {
	box := entityBox(subject)
	var hits []*donburi.Entry
	for _, candidate := range candidates(e, subject, resolvTag, tag) {
		if !candidate.Valid() || candidate.Entity() == subject.Entity() {
			continue
		}
		if box.Intersects(entityBox(candidate)) {
			hits = append(hits, candidate)
		}
	}
	return sortByEntity(hits)
}

func firstOverlapping(e *ecs.ECS, subject *donburi.Entry, resolvTag string, tag taggedSet) *donburi.Entry {
	hits := overlapping(e, subject, resolvTag, tag)
	if len(hits) == 0 {
		return nil
	}
	return hits[0]
}

func candidates(e *ecs.ECS, subject *donburi.Entry, resolvTag string, tag taggedSet) []*donburi.Entry {
	if subject.HasComponent(components.Object) {
		obj := components.Object.Get(subject)
		if obj.Object != nil && obj.Space != nil {
			var out []*donburi.Entry
			if check := obj.Check(0, 0, resolvTag); check != nil {
				for _, o := range check.ObjectsByTags(resolvTag) {
					if entry, ok := o.Data.(*donburi.Entry); ok {
						out = append(out, entry)
					}
				}
			}
			return out
		}
	}

	var out []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}
