package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	FrameWidth  int
	FrameHeight int
	SpriteScale float64 // render size relative to the sheet frame
	BoundsScale float64 // collision size relative to the sheet frame

	Health        int
	Speed         float64 // world units per second before stat multipliers
	ShootCooldown float64 // seconds between shots at fire rate 1.0
	FPS           float64
	Z             float64
}

// BulletConfig contains the player projectile configuration
type BulletConfig struct {
	FrameWidth  int
	FrameHeight int
	Scale       float64
	Speed       float64
	HalfExtent  float64 // collision half size on both axes
	Damage      int
	Frames      FrameSpan
	FPS         float64
	Z           float64
}

// SpawnConfig contains the enemy spawn gate values
type SpawnConfig struct {
	MaxEnemies  int
	Chance      int // a draw in [0, Denominator) spawns when <= Chance
	Denominator int
	Gutter      float64 // horizontal gap between spawn columns
}

// CollisionPolicy selects how an enemy touching the player is resolved.
type CollisionPolicy int

const (
	// CollisionMutualDamage subtracts each side's health from the other.
	CollisionMutualDamage CollisionPolicy = iota
	// CollisionInstantGameOver ends the run on any contact.
	CollisionInstantGameOver
)

func (p CollisionPolicy) String() string {
	switch p {
	case CollisionMutualDamage:
		return "mutual-damage"
	case CollisionInstantGameOver:
		return "instant-game-over"
	}
	return "unknown"
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	Policy CollisionPolicy
}

// ExplosionConfig describes the one-shot death effect
type ExplosionConfig struct {
	FrameSize int
	Scale     float64
	Frames    FrameSpan
	FPS       float64
	Z         float64
}

// SpaceConfig sizes the broadphase grid. Margin extends the grid past the
// viewport so entities entering or leaving the screen stay registered.
type SpaceConfig struct {
	CellSize int
	Margin   int
}

// StarfieldConfig contains background scroll configuration
type StarfieldConfig struct {
	Stars        int
	BaseSpeed    float64 // world units per second at speed 1.0
	Speeds       map[StarSpeed]float64
	EaseDuration float64 // seconds to blend between presets
	DriftRate    float64 // direction modifier change per second of horizontal input
	MaxDrift     float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin       float64
	LineHeight   float64
	TextColor    color.RGBA
	AccentColor  color.RGBA
	OverlayColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Start playing immediately
	DrawBounds bool // Outline collision boxes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Spawn SpawnConfig
var Combat CombatConfig
var Explosion ExplosionConfig
var Space SpaceConfig
var Starfield StarfieldConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Player = PlayerConfig{
		FrameWidth:    16,
		FrameHeight:   24,
		SpriteScale:   2.0,
		BoundsScale:   1.8,
		Health:        10,
		Speed:         200,
		ShootCooldown: 0.4,
		FPS:           12,
		Z:             1,
	}

	Bullet = BulletConfig{
		FrameWidth:  16,
		FrameHeight: 16,
		Scale:       2.0,
		Speed:       500,
		HalfExtent:  8,
		Damage:      1,
		Frames:      FrameSpan{First: 2, Last: 3},
		FPS:         12,
		Z:           0.5,
	}

	Spawn = SpawnConfig{
		MaxEnemies:  40,
		Chance:      1,
		Denominator: 100,
		Gutter:      4,
	}

	Combat = CombatConfig{
		Policy: CollisionMutualDamage,
	}

	Explosion = ExplosionConfig{
		FrameSize: 16,
		Scale:     2.0,
		Frames:    FrameSpan{First: 0, Last: 4},
		FPS:       12,
		Z:         2,
	}

	Space = SpaceConfig{
		CellSize: 32,
		Margin:   256,
	}

	Starfield = StarfieldConfig{
		Stars:     120,
		BaseSpeed: 60,
		Speeds: map[StarSpeed]float64{
			StarSpeedStop: 0,
			StarSpeedSlow: 1,
			StarSpeedFast: 3,
		},
		EaseDuration: 0.75,
		DriftRate:    0.05,
		MaxDrift:     1,
	}

	HUD = HUDConfig{
		Margin:       12,
		LineHeight:   16,
		TextColor:    White,
		AccentColor:  Yellow,
		OverlayColor: BlackOverlay,
	}
}
