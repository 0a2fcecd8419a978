package components

import (
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the entity position in world space. Z orders drawing.
type TransformData struct {
	Position gamemath.Vector2
	Z        float64
}

// BoundsData is the full collision size, fixed at spawn.
type BoundsData struct {
	Size gamemath.Vector2
}

// AABB returns the collision box at the current position.
func (b *BoundsData) AABB(t *TransformData) gamemath.AABB {
	return gamemath.NewAABB(t.Position, b.Size)
}

// VelocityData is a direction; the magnitude comes from MovementSpeed.
type VelocityData struct {
	Direction gamemath.Vector2
}

type MovementSpeedData struct {
	Speed float64
}

var Transform = donburi.NewComponentType[TransformData]()
var Bounds = donburi.NewComponentType[BoundsData]()
var Velocity = donburi.NewComponentType[VelocityData]()
var MovementSpeed = donburi.NewComponentType[MovementSpeedData]()
