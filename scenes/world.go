package scenes

import (
	"image/color"
	"math/rand/v2"
	"sync"

	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/systems"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options seeds a new game scene.
type Options struct {
	Seed      uint64
	HighScore int
	SkipMenu  bool
}

type GameScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once
}

func NewGameScene(opts Options) *GameScene {
	return &GameScene{opts: opts}
}

// Update advances one tick. It returns ebiten.Termination once quit has
// been requested.
func (gs *GameScene) Update() error {
	gs.once.Do(gs.configure)

	systems.Advance(gs.ecs, 1/float64(ebiten.TPS()), float64(cfg.C.Width), float64(cfg.C.Height))
	gs.ecs.Update()

	if systems.GetGameState(gs.ecs).QuitRequested {
		return ebiten.Termination
	}
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// ECS exposes the world for hosts that drive ticks themselves.
func (gs *GameScene) ECS() *ecs.ECS {
	gs.once.Do(gs.configure)
	return gs.ecs
}

func (gs *GameScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateGameState)

	// Game systems wrapped with the active check
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateScoring))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerAnimation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Systems that run even when paused
	ecs.AddSystem(systems.UpdateStarfield)
	ecs.AddSystem(systems.QueueEventSounds)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.ClearEvents)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawStarfield)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)

	gs.ecs = ecs

	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	factory.CreateSession(gs.ecs, factory.SessionOptions{
		Width:     width,
		Height:    height,
		Rand:      rand.New(rand.NewPCG(gs.opts.Seed, gs.opts.Seed^0x9e3779b97f4a7c15)),
		HighScore: gs.opts.HighScore,
		State:     cfg.GameStateReady,
	})
	factory.CreateSpaceForViewport(gs.ecs, width, height)

	if gs.opts.SkipMenu {
		systems.StartRun(gs.ecs)
	}
}
