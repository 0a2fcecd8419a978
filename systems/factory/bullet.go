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

// CreateBullet spawns a player projectile travelling straight up from pos.
func CreateBullet(ecs *ecs.ECS, pos gamemath.Vector2) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	he := cfg.Bullet.HalfExtent
	components.Bullet.SetValue(bullet, components.BulletData{Damage: cfg.Bullet.Damage})
	components.Transform.SetValue(bullet, components.TransformData{Position: pos, Z: cfg.Bullet.Z})
	components.Bounds.SetValue(bullet, components.BoundsData{Size: gamemath.Vec(he*2, he*2)})
	components.Velocity.SetValue(bullet, components.VelocityData{Direction: gamemath.Vec(0, 1)})
	components.MovementSpeed.SetValue(bullet, components.MovementSpeedData{Speed: cfg.Bullet.Speed})
	components.Animation.SetValue(bullet, components.AnimationData{
		CurrentAnimation: animations.NewAnimation(cfg.Bullet.Frames.First, cfg.Bullet.Frames.Last, 1, cfg.Bullet.FPS),
	})
	components.Sprite.SetValue(bullet, components.SpriteData{
		Sheet: cfg.SheetBullet,
		Size: gamemath.Vec(
			float64(cfg.Bullet.FrameWidth)*cfg.Bullet.Scale,
			float64(cfg.Bullet.FrameHeight)*cfg.Bullet.Scale,
		),
		Tint: cfg.LightGreen,
	})

	attachObject(ecs.World, bullet, tags.ResolvBullet)
	return bullet
}
