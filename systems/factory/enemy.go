package factory

import (
	"github.com/automoto/starshooter/archetypes"
	"github.com/automoto/starshooter/assets/animations"
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given tier falling from pos and counts
// it in the live population.
func CreateEnemy(ecs *ecs.ECS, enemyType cfg.EnemyType, pos gamemath.Vector2) *donburi.Entry {
	conf := enemyType.Config()
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := conf.Size()
	size := gamemath.Vec(w, h)
	components.Enemy.SetValue(enemy, components.EnemyData{Type: enemyType})
	components.Transform.SetValue(enemy, components.TransformData{Position: pos, Z: 1})
	components.Bounds.SetValue(enemy, components.BoundsData{Size: size})
	components.Velocity.SetValue(enemy, components.VelocityData{Direction: gamemath.Vec(0, -1)})
	components.MovementSpeed.SetValue(enemy, components.MovementSpeedData{Speed: conf.Speed})
	components.Health.SetValue(enemy, components.HealthData{Current: conf.Health, Max: conf.Health})
	components.Animation.SetValue(enemy, components.AnimationData{
		CurrentAnimation: animations.NewAnimation(conf.Frames.First, conf.Frames.Last, 1, conf.FPS),
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Sheet: cfg.EnemySheet(enemyType),
		Size:  size,
		Tint:  conf.Tint,
	})

	attachObject(ecs.World, enemy, tags.ResolvEnemy)

	if entry, ok := components.EnemyCount.First(ecs.World); ok {
		components.EnemyCount.Get(entry).Increment(enemyType)
	}
	return enemy
}
