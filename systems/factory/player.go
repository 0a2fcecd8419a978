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

func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vector2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	frame := gamemath.Vec(float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight))
	components.Transform.SetValue(player, components.TransformData{Position: pos, Z: cfg.Player.Z})
	components.Bounds.SetValue(player, components.BoundsData{Size: frame.MulScalar(cfg.Player.BoundsScale)})
	components.MovementSpeed.SetValue(player, components.MovementSpeedData{Speed: cfg.Player.Speed})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Player.SetValue(player, components.PlayerData{
		Stats: components.DefaultPlayerStats(),
	})
	components.Shoot.SetValue(player, components.ShootData{
		Cooldown: cfg.Player.ShootCooldown,
		Timer:    cfg.Player.ShootCooldown,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.PlayerIdle,
		PreviousState: cfg.PlayerIdle,
	})

	idle := animations.FrameRange(cfg.PlayerIdleFrames)
	components.AnimationStack.Set(player, animations.NewStack(idle))
	components.Animation.SetValue(player, components.AnimationData{
		CurrentAnimation: animations.NewAnimation(idle.First, idle.Last, 1, cfg.Player.FPS),
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Sheet: cfg.SheetPlayer,
		Size:  frame.MulScalar(cfg.Player.SpriteScale),
		Tint:  cfg.White,
	})

	attachObject(ecs.World, player, tags.ResolvPlayer)
	return player
}
