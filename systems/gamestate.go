package systems

import (
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Signal queues a one-shot request for the next UpdateGameState.
func Signal(e *ecs.ECS, sig cfg.GameSignal) {
	gs := GetGameState(e)
	gs.Signals = append(gs.Signals, sig)
}

// UpdateGameState turns input into signals, drains every pending signal and
// decides whether gameplay systems run this tick.
// Must run after UpdateInput and before any WithGameplayChecks system.
func UpdateGameState(e *ecs.ECS) {
	gs := GetGameState(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		gs.Signals = append(gs.Signals, cfg.SignalQuit)
	}
	if GetAction(input, cfg.ActionPause).JustPressed {
		gs.Signals = append(gs.Signals, cfg.SignalTogglePause)
	}
	if GetAction(input, cfg.ActionRestart).JustPressed {
		gs.Signals = append(gs.Signals, cfg.SignalRestart)
	}
	if GetAction(input, cfg.ActionStart).JustPressed {
		gs.Signals = append(gs.Signals, cfg.SignalStart)
	}

	for len(gs.Signals) > 0 {
		sig := gs.Signals[0]
		gs.Signals = gs.Signals[1:]
		handleSignal(e, gs, sig)
	}
	gs.Signals = gs.Signals[:0]

	gs.Active = gs.Current == cfg.GameStatePlaying && !gs.QuitRequested
}

func handleSignal(e *ecs.ECS, gs *components.GameStateData, sig cfg.GameSignal) {
	switch sig {
	case cfg.SignalStart:
		if gs.Current == cfg.GameStateReady || gs.Current == cfg.GameStateGameOver {
			StartRun(e)
		}
	case cfg.SignalTogglePause:
		switch gs.Current {
		case cfg.GameStatePlaying:
			setGameState(e, cfg.GameStatePaused)
		case cfg.GameStatePaused:
			setGameState(e, cfg.GameStatePlaying)
		}
	case cfg.SignalRestart:
		if gs.Current == cfg.GameStateGameOver || gs.Current == cfg.GameStatePaused {
			StartRun(e)
		}
	case cfg.SignalQuit:
		SaveHighScore(e)
		gs.QuitRequested = true
		zap.L().Info("quit requested", zap.String("run_id", gs.RunID))
	}
}

// WithGameplayChecks wraps a system to run only on active ticks.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetGameState(e).Active {
			return
		}
		system(e)
	}
}

// StartRun resets the world to a fresh run and enters Playing. This is the
// only place run counters are reset; resuming from pause never calls it.
func StartRun(e *ecs.ECS) {
	ResetRun(e)
	gs := GetGameState(e)
	gs.RunID = uuid.NewString()
	gs.Runs++
	setGameState(e, cfg.GameStatePlaying)
	zap.L().Info("run started",
		zap.String("run_id", gs.RunID),
		zap.Int("run", gs.Runs),
		zap.Int("high_score", GetScore(e).HighScore),
	)
}

type taggedSet interface {
	Each(w donburi.World, fn func(*donburi.Entry))
}

// ResetRun despawns every gameplay entity, zeroes the score and population
// counters, clears pending events and spawns a fresh player.
func ResetRun(e *ecs.ECS) {
	var doomed []*donburi.Entry
	for _, tag := range []taggedSet{tags.Player, tags.Enemy, tags.Bullet, tags.Powerup, tags.Explosion} {
		tag.Each(e.World, func(entry *donburi.Entry) {
			doomed = append(doomed, entry)
		})
	}
	for _, entry := range doomed {
		factory.Despawn(e.World, entry)
	}

	GetScore(e).Value = 0
	*GetEnemyCount(e) = components.EnemyCountData{}
	GetPowerupCount(e).Count = 0
	GetEvents(e).Clear()

	factory.CreatePlayer(e, gamemath.Vec(0, 0))
}

// EndRun moves to GameOver and stores a beaten high score.
func EndRun(e *ecs.ECS) {
	gs := GetGameState(e)
	if gs.Current == cfg.GameStateGameOver {
		return
	}
	setGameState(e, cfg.GameStateGameOver)
	PlaySFX(e, cfg.SoundGameOver)
	SaveHighScore(e)
	score := GetScore(e)
	zap.L().Info("game over",
		zap.String("run_id", gs.RunID),
		zap.Int("score", score.Value),
		zap.Int("high_score", score.HighScore),
	)
}

func setGameState(e *ecs.ECS, next cfg.GameStateID) {
	gs := GetGameState(e)
	if gs.Current == next {
		return
	}
	gs.Previous = gs.Current
	gs.Current = next
	SetStarfieldPreset(e, starfieldPresetFor(next))
	zap.L().Debug("game state changed",
		zap.Stringer("from", gs.Previous),
		zap.Stringer("to", next),
	)
}

func starfieldPresetFor(state cfg.GameStateID) cfg.StarSpeed {
	switch state {
	case cfg.GameStatePlaying:
		return cfg.StarSpeedFast
	case cfg.GameStatePaused:
		return cfg.StarSpeedStop
	}
	return cfg.StarSpeedSlow
}
