package components

import (
	cfg "github.com/automoto/starshooter/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	MusicVolume float64 // 0.0 - 1.0
	SFXVolume   float64 // 0.0 - 1.0
	PendingSFX  []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
