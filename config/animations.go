package config

// FrameSpan is an inclusive range of sprite sheet indices.
type FrameSpan struct {
	First int
	Last  int
}

// Player ship sheet layout.
var (
	PlayerIdleFrames            = FrameSpan{First: 0, Last: 1}
	PlayerTransitionLeftFrames  = FrameSpan{First: 2, Last: 3}
	PlayerMoveLeftFrames        = FrameSpan{First: 4, Last: 5}
	PlayerTransitionRightFrames = FrameSpan{First: 6, Last: 7}
	PlayerMoveRightFrames       = FrameSpan{First: 8, Last: 9}
)

// SheetID names a sprite sheet known to the renderer.
type SheetID int

const (
	SheetNone SheetID = iota
	SheetPlayer
	SheetEnemySmall
	SheetEnemyMedium
	SheetEnemyLarge
	SheetBullet
	SheetPowerup
	SheetExplosion
)

// EnemySheet returns the sheet drawn for a tier.
func EnemySheet(t EnemyType) SheetID {
	switch t {
	case EnemyMedium:
		return SheetEnemyMedium
	case EnemyLarge:
		return SheetEnemyLarge
	}
	return SheetEnemySmall
}
