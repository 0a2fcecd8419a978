package config

import "image/color"

// EnemyType is one of the three enemy size tiers.
type EnemyType int

const (
	EnemySmall EnemyType = iota
	EnemyMedium
	EnemyLarge
)

// EnemyTypes lists every tier in weighted-selection scan order.
var EnemyTypes = []EnemyType{EnemyLarge, EnemyMedium, EnemySmall}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name        string
	FrameWidth  int
	FrameHeight int
	Scale       float64
	Speed       float64
	Health      int
	SpawnWeight float64
	Score       int
	Frames      FrameSpan
	FPS         float64
	Tint        color.RGBA

	// Drop is the powerup left behind on death, when HasDrop is set.
	Drop    PowerupType
	HasDrop bool
}

var enemyTypes = [...]EnemyTypeConfig{
	EnemySmall: {
		Name:        "small",
		FrameWidth:  17,
		FrameHeight: 16,
		Scale:       2,
		Speed:       100,
		Health:      2,
		SpawnWeight: 8.0,
		Score:       2,
		Frames:      FrameSpan{First: 0, Last: 1},
		FPS:         12,
		Tint:        LightRed,
	},
	EnemyMedium: {
		Name:        "medium",
		FrameWidth:  32,
		FrameHeight: 16,
		Scale:       2,
		Speed:       50,
		Health:      8,
		SpawnWeight: 0.4,
		Score:       12,
		Frames:      FrameSpan{First: 0, Last: 1},
		FPS:         12,
		Tint:        Orange,
		Drop:        PowerupSpeed,
		HasDrop:     true,
	},
	EnemyLarge: {
		Name:        "large",
		FrameWidth:  32,
		FrameHeight: 32,
		Scale:       2,
		Speed:       25,
		Health:      20,
		SpawnWeight: 0.1,
		Score:       40,
		Frames:      FrameSpan{First: 0, Last: 1},
		FPS:         12,
		Tint:        Magenta,
		Drop:        PowerupFireRate,
		HasDrop:     true,
	},
}

// Config returns the static configuration for the tier. Unknown values fall
// back to the small tier.
func (t EnemyType) Config() *EnemyTypeConfig {
	if t < 0 || int(t) >= len(enemyTypes) {
		return &enemyTypes[EnemySmall]
	}
	return &enemyTypes[t]
}

func (t EnemyType) String() string {
	return t.Config().Name
}

// Size is the rendered and collision size of the tier in world units.
func (c *EnemyTypeConfig) Size() (w, h float64) {
	return float64(c.FrameWidth) * c.Scale, float64(c.FrameHeight) * c.Scale
}
