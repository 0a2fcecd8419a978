package factory

import (
	"github.com/automoto/starshooter/archetypes"
	"github.com/automoto/starshooter/assets/animations"
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnExplosion creates a one-shot explosion centered on pos. It removes
// itself after the last frame has been shown.
func SpawnExplosion(ecs *ecs.ECS, pos gamemath.Vector2) *donburi.Entry {
	e := archetypes.Explosion.Spawn(ecs)

	side := float64(cfg.Explosion.FrameSize) * cfg.Explosion.Scale
	anim := animations.NewAnimation(cfg.Explosion.Frames.First, cfg.Explosion.Frames.Last, 1, cfg.Explosion.FPS)
	anim.FreezeOnComplete = true

	components.Transform.SetValue(e, components.TransformData{Position: pos, Z: cfg.Explosion.Z})
	components.Animation.SetValue(e, components.AnimationData{CurrentAnimation: anim})
	components.Sprite.SetValue(e, components.SpriteData{
		Sheet: cfg.SheetExplosion,
		Size:  gamemath.Vec(side, side),
		Tint:  cfg.Orange,
	})
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{DestroyOnAnimLoop: true})
	return e
}
