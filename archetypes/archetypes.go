package archetypes

import (
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Shoot,
		components.Transform,
		components.Bounds,
		components.Velocity,
		components.MovementSpeed,
		components.Health,
		components.State,
		components.AnimationStack,
		components.Animation,
		components.Sprite,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Bounds,
		components.Velocity,
		components.MovementSpeed,
		components.Health,
		components.Animation,
		components.Sprite,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Transform,
		components.Bounds,
		components.Velocity,
		components.MovementSpeed,
		components.Animation,
		components.Sprite,
		components.Object,
	)
	Powerup = newArchetype(
		tags.Powerup,
		components.Powerup,
		components.Transform,
		components.Bounds,
		components.Velocity,
		components.MovementSpeed,
		components.Animation,
		components.Sprite,
		components.Object,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Transform,
		components.Animation,
		components.Sprite,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		tags.Session,
		components.GameState,
		components.Score,
		components.EnemyCount,
		components.PowerupCount,
		components.Events,
		components.Input,
		components.Audio,
		components.Viewport,
		components.Clock,
		components.Random,
		components.Starfield,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
