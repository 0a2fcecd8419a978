package factory

import (
	"github.com/automoto/starshooter/archetypes"
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionOptions seeds the session singleton.
type SessionOptions struct {
	Width     float64
	Height    float64
	Rand      components.Rand
	HighScore int
	State     cfg.GameStateID
}

// CreateSession spawns the singleton that holds run state, counters, input,
// the per-tick event queue and the host supplied viewport and clock.
func CreateSession(ecs *ecs.ECS, opts SessionOptions) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.GameState.SetValue(session, components.GameStateData{
		Current:  opts.State,
		Previous: opts.State,
	})
	components.Score.SetValue(session, components.ScoreData{
		HighScore: opts.HighScore,
		Persisted: opts.HighScore,
	})
	components.Viewport.SetValue(session, components.ViewportData{Width: opts.Width, Height: opts.Height})
	components.Random.SetValue(session, components.RandomData{Source: opts.Rand})
	components.Audio.SetValue(session, components.AudioData{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	})
	components.Starfield.SetValue(session, components.StarfieldData{
		Preset: cfg.StarSpeedSlow,
		Speed:  cfg.Starfield.Speeds[cfg.StarSpeedSlow],
	})
	return session
}
