package components

import (
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerStats are multiplicative buffs collected from powerups.
type PlayerStats struct {
	FireRate float64
	Speed    float64
}

func DefaultPlayerStats() PlayerStats {
	return PlayerStats{FireRate: 1, Speed: 1}
}

type PlayerData struct {
	Stats     PlayerStats
	Direction gamemath.Vector2 // normalized movement intent for this tick
	Firing    bool
}

// ShootData tracks the time left before the next shot is allowed.
type ShootData struct {
	Cooldown float64 // seconds at fire rate 1.0
	Timer    float64
}

// AdjustedCooldown scales the base cooldown down by the fire rate.
func (s *ShootData) AdjustedCooldown(fireRate float64) float64 {
	if fireRate <= 0 {
		return s.Cooldown
	}
	return s.Cooldown / fireRate
}

var Player = donburi.NewComponentType[PlayerData]()
var Shoot = donburi.NewComponentType[ShootData]()
