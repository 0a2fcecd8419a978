package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundExplosion
	SoundHit
	SoundPowerup
	SoundGameOver
)

// Tone is a synthesized square wave used in place of sampled effects.
type Tone struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0 before the effect volume is applied
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	Tones           map[SoundID]Tone
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
		Tones: map[SoundID]Tone{
			SoundShoot:     {Frequency: 880, Duration: 0.05, Volume: 0.25},
			SoundExplosion: {Frequency: 110, Duration: 0.2, Volume: 0.4},
			SoundHit:       {Frequency: 220, Duration: 0.12, Volume: 0.4},
			SoundPowerup:   {Frequency: 1320, Duration: 0.15, Volume: 0.3},
			SoundGameOver:  {Frequency: 80, Duration: 0.6, Volume: 0.5},
		},
	}
}
