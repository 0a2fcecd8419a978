package components

import (
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DestroyCause records what removed an entity.
type DestroyCause int

const (
	CauseBullet DestroyCause = iota
	CauseCollision
)

func (c DestroyCause) String() string {
	if c == CauseCollision {
		return "collision"
	}
	return "bullet"
}

// DestroyedEvent is emitted once per entity removed for health reaching zero.
type DestroyedEvent struct {
	Entity    donburi.Entity
	Player    bool
	EnemyType cfg.EnemyType
	Position  gamemath.Vector2
	Cause     DestroyCause
}

// CollisionEvent is emitted when an enemy touches the player.
type CollisionEvent struct {
	Enemy    donburi.Entity
	Side     gamemath.Side
	Position gamemath.Vector2
}

type PowerupPickupEvent struct {
	Type     cfg.PowerupType
	Position gamemath.Vector2
}

// EventsData collects the events of a single tick. Producers append during
// the tick, consumers read later in the same tick, and the queue is cleared
// as the last step.
type EventsData struct {
	Destroyed  []DestroyedEvent
	Collisions []CollisionEvent
	Pickups    []PowerupPickupEvent
	ShotsFired int
	BulletHits int
}

func (e *EventsData) Clear() {
	e.Destroyed = e.Destroyed[:0]
	e.Collisions = e.Collisions[:0]
	e.Pickups = e.Pickups[:0]
	e.ShotsFired = 0
	e.BulletHits = 0
}

var Events = donburi.NewComponentType[EventsData]()
