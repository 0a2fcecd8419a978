package config

import "image/color"

// PowerupType is a collectible stat boost.
type PowerupType int

const (
	PowerupFireRate PowerupType = iota
	PowerupSpeed
)

// PowerupTypeConfig contains configuration for a powerup kind
type PowerupTypeConfig struct {
	Name       string
	Multiplier float64
	Frames     FrameSpan
	Tint       color.RGBA
}

// PowerupConfig contains shared powerup configuration
type PowerupConfig struct {
	MaxPowerups int
	FrameSize   int
	Scale       float64
	Speed       float64
	FPS         float64
	Z           float64
}

var Powerup PowerupConfig

var powerupTypes = [...]PowerupTypeConfig{
	PowerupFireRate: {
		Name:       "fire-rate",
		Multiplier: 1.5,
		Frames:     FrameSpan{First: 0, Last: 1},
		Tint:       Yellow,
	},
	PowerupSpeed: {
		Name:       "speed",
		Multiplier: 1.2,
		Frames:     FrameSpan{First: 2, Last: 3},
		Tint:       LightBlue,
	},
}

func (t PowerupType) Config() *PowerupTypeConfig {
	if t < 0 || int(t) >= len(powerupTypes) {
		return &powerupTypes[PowerupFireRate]
	}
	return &powerupTypes[t]
}

func (t PowerupType) String() string {
	return t.Config().Name
}

func init() {
	Powerup = PowerupConfig{
		MaxPowerups: 3,
		FrameSize:   16,
		Scale:       2,
		Speed:       50,
		FPS:         12,
		Z:           0.75,
	}
}
