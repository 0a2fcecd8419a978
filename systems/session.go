package systems

import (
	"math/rand/v2"

	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateSession returns the session singleton, creating one sized to the
// configured window if the scene has not made one yet.
func getOrCreateSession(e *ecs.ECS) *donburi.Entry {
	if entry, ok := tags.Session.First(e.World); ok {
		return entry
	}
	return factory.CreateSession(e, factory.SessionOptions{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
		Rand:   rand.New(rand.NewPCG(1, 2)),
		State:  cfg.GameStateReady,
	})
}

func GetGameState(e *ecs.ECS) *components.GameStateData {
	return components.GameState.Get(getOrCreateSession(e))
}

func GetScore(e *ecs.ECS) *components.ScoreData {
	return components.Score.Get(getOrCreateSession(e))
}

func GetEnemyCount(e *ecs.ECS) *components.EnemyCountData {
	return components.EnemyCount.Get(getOrCreateSession(e))
}

func GetPowerupCount(e *ecs.ECS) *components.PowerupCountData {
	return components.PowerupCount.Get(getOrCreateSession(e))
}

func GetEvents(e *ecs.ECS) *components.EventsData {
	return components.Events.Get(getOrCreateSession(e))
}

func GetViewport(e *ecs.ECS) *components.ViewportData {
	return components.Viewport.Get(getOrCreateSession(e))
}

func GetClock(e *ecs.ECS) *components.ClockData {
	return components.Clock.Get(getOrCreateSession(e))
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	return components.Input.Get(getOrCreateSession(e))
}

func getRandom(e *ecs.ECS) components.Rand {
	return components.Random.Get(getOrCreateSession(e)).Source
}

func getStarfield(e *ecs.ECS) *components.StarfieldData {
	return components.Starfield.Get(getOrCreateSession(e))
}

// GetOrCreateAudio returns the singleton Audio component for this ECS
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return components.Audio.Get(getOrCreateSession(e))
}

// Advance sets the host supplied delta time and viewport for the coming tick.
func Advance(e *ecs.ECS, dt, width, height float64) {
	clock := GetClock(e)
	if dt < 0 {
		dt = 0
	}
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++

	vp := GetViewport(e)
	if vp.Width == width && vp.Height == height {
		return
	}
	vp.Width = width
	vp.Height = height
	factory.ResizeSpace(e.World, width, height)
}

// PlayerEntry returns the live player, if any.
func PlayerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := tags.Player.First(e.World)
	if !ok || !entry.Valid() {
		return nil, false
	}
	return entry, true
}
