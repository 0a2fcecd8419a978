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

// CreatePowerup spawns a falling powerup and counts it in the population.
// Callers enforce the population cap.
func CreatePowerup(ecs *ecs.ECS, powerupType cfg.PowerupType, pos gamemath.Vector2) *donburi.Entry {
	conf := powerupType.Config()
	powerup := archetypes.Powerup.Spawn(ecs)

	side := float64(cfg.Powerup.FrameSize) * cfg.Powerup.Scale
	size := gamemath.Vec(side, side)
	components.Powerup.SetValue(powerup, components.PowerupData{Type: powerupType})
	components.Transform.SetValue(powerup, components.TransformData{Position: pos, Z: cfg.Powerup.Z})
	components.Bounds.SetValue(powerup, components.BoundsData{Size: size})
	components.Velocity.SetValue(powerup, components.VelocityData{Direction: gamemath.Vec(0, -1)})
	components.MovementSpeed.SetValue(powerup, components.MovementSpeedData{Speed: cfg.Powerup.Speed})
	components.Animation.SetValue(powerup, components.AnimationData{
		CurrentAnimation: animations.NewAnimation(conf.Frames.First, conf.Frames.Last, 1, cfg.Powerup.FPS),
	})
	components.Sprite.SetValue(powerup, components.SpriteData{
		Sheet: cfg.SheetPowerup,
		Size:  size,
		Tint:  conf.Tint,
	})

	attachObject(ecs.World, powerup, tags.ResolvPowerup)

	if entry, ok := components.PowerupCount.First(ecs.World); ok {
		components.PowerupCount.Get(entry).Count++
	}
	return powerup
}
