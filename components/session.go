package components

import (
	cfg "github.com/automoto/starshooter/config"
	"github.com/yohamta/donburi"
)

// GameStateData is the run state singleton.
type GameStateData struct {
	Current  cfg.GameStateID
	Previous cfg.GameStateID
	// Active is decided once at the start of each tick; gameplay systems
	// only run when it is set.
	Active        bool
	Signals       []cfg.GameSignal
	QuitRequested bool
	RunID         string
	Runs          int
}

// ScoreData holds the current score and the best score seen so far.
type ScoreData struct {
	Value     int
	HighScore int
	// Persisted is the last high score written to storage.
	Persisted int
}

// EnemyCountData mirrors the live enemy population per tier.
type EnemyCountData struct {
	Small  int
	Medium int
	Large  int
}

func (c *EnemyCountData) Total() int {
	return c.Small + c.Medium + c.Large
}

func (c *EnemyCountData) Get(t cfg.EnemyType) int {
	switch t {
	case cfg.EnemyMedium:
		return c.Medium
	case cfg.EnemyLarge:
		return c.Large
	}
	return c.Small
}

func (c *EnemyCountData) Increment(t cfg.EnemyType) {
	c.add(t, 1)
}

// Decrement never drops a tier below zero.
func (c *EnemyCountData) Decrement(t cfg.EnemyType) {
	if c.Get(t) > 0 {
		c.add(t, -1)
	}
}

func (c *EnemyCountData) add(t cfg.EnemyType, n int) {
	switch t {
	case cfg.EnemyMedium:
		c.Medium += n
	case cfg.EnemyLarge:
		c.Large += n
	default:
		c.Small += n
	}
}

type PowerupCountData struct {
	Count int
}

// ViewportData is the play area size in world units, refreshed every tick.
type ViewportData struct {
	Width  float64
	Height float64
}

func (v *ViewportData) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// ClockData carries the delta time of the current tick.
type ClockData struct {
	Delta   float64 // seconds
	Elapsed float64
	Ticks   uint64
}

// Rand is the random source used by the spawner.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type RandomData struct {
	Source Rand
}

var GameState = donburi.NewComponentType[GameStateData]()
var Score = donburi.NewComponentType[ScoreData]()
var EnemyCount = donburi.NewComponentType[EnemyCountData]()
var PowerupCount = donburi.NewComponentType[PowerupCountData]()
var Viewport = donburi.NewComponentType[ViewportData]()
var Clock = donburi.NewComponentType[ClockData]()
var Random = donburi.NewComponentType[RandomData]()
