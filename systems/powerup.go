package systems

import (
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// TrySpawnPowerup drops a powerup at pos unless the population cap is reached.
func TrySpawnPowerup(e *ecs.ECS, kind cfg.PowerupType, pos gamemath.Vector2) (*donburi.Entry, bool) {
	if GetPowerupCount(e).Count >= cfg.Powerup.MaxPowerups {
		zap.L().Debug("powerup drop skipped: cap reached", zap.Stringer("type", kind))
		return nil, false
	}
	return factory.CreatePowerup(e, kind, pos), true
}

func resolvePowerupPickups(e *ecs.ECS) {
	player, ok := PlayerEntry(e)
	if !ok {
		return
	}
	stats := &components.Player.Get(player).Stats
	events := GetEvents(e)

	for _, powerup := range overlapping(e, player, tags.ResolvPowerup, tags.Powerup) {
		kind := components.Powerup.Get(powerup).Type
		ApplyPowerup(stats, kind)
		events.Pickups = append(events.Pickups, components.PowerupPickupEvent{
			Type:     kind,
			Position: components.Transform.Get(powerup).Position,
		})
		factory.Despawn(e.World, powerup)
	}
}

// ApplyPowerup multiplies the matching player stat.
func ApplyPowerup(stats *components.PlayerStats, kind cfg.PowerupType) {
	conf := kind.Config()
	switch kind {
	case cfg.PowerupFireRate:
		stats.FireRate *= conf.Multiplier
	case cfg.PowerupSpeed:
		stats.Speed *= conf.Multiplier
	}
}
