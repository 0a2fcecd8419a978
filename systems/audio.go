package systems

import (
	"encoding/binary"
	"math"
	"sync"

	cfg "github.com/automoto/starshooter/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalToneCache    = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PlaySFX queues a sound effect for the next audio drain.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	if id == cfg.SoundNone {
		return
	}
	a := GetOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, id)
}

// DrainSFX returns and clears the queued sound effects.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	a := GetOrCreateAudio(e)
	pending := append([]cfg.SoundID(nil), a.PendingSFX...)
	a.PendingSFX = a.PendingSFX[:0]
	return pending
}

// QueueEventSounds turns this tick's gameplay events into sound effects.
func QueueEventSounds(e *ecs.ECS) {
	events := GetEvents(e)
	if events.ShotsFired > 0 {
		PlaySFX(e, cfg.SoundShoot)
	}
	if events.BulletHits > 0 || len(events.Collisions) > 0 {
		PlaySFX(e, cfg.SoundHit)
	}
	if len(events.Destroyed) > 0 {
		PlaySFX(e, cfg.SoundExplosion)
	}
	if len(events.Pickups) > 0 {
		PlaySFX(e, cfg.SoundPowerup)
	}
}

// UpdateAudio plays every queued sound effect. Repeats of the same effect in
// one tick are played once.
func UpdateAudio(e *ecs.ECS) {
	pending := DrainSFX(e)
	if len(pending) == 0 {
		return
	}
	volume := GetOrCreateAudio(e).SFXVolume
	if volume <= 0 {
		return
	}
	initGlobalAudio()

	played := make(map[cfg.SoundID]bool, len(pending))
	for _, id := range pending {
		if played[id] {
			continue
		}
		played[id] = true
		playSFX(id, volume)
	}
}

func playSFX(id cfg.SoundID, volume float64) {
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return
	}
	pcm, ok := globalToneCache[id]
	if !ok {
		pcm = SynthesizeTone(tone, cfg.Audio.SampleRate)
		globalToneCache[id] = pcm
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
	zap.L().Debug("sfx", zap.Int("sound", int(id)))
}

// SynthesizeTone renders a square wave as 16-bit little endian stereo PCM,
// with a linear fade out to avoid clicks.
func SynthesizeTone(tone cfg.Tone, sampleRate int) []byte {
	if sampleRate <= 0 || tone.Duration <= 0 || tone.Frequency <= 0 {
		return nil
	}
	n := int(float64(sampleRate) * tone.Duration)
	buf := make([]byte, n*4)
	period := float64(sampleRate) / tone.Frequency
	for i := 0; i < n; i++ {
		amp := tone.Volume * (1 - float64(i)/float64(n))
		if math.Mod(float64(i), period) >= period/2 {
			amp = -amp
		}
		s := uint16(int16(amp * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[4*i:], s)
		binary.LittleEndian.PutUint16(buf[4*i+2:], s)
	}
	return buf
}
