package systems

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaySFXQueues(t *testing.T) {
	e := newPlayingECS(t)
	PlaySFX(e, cfg.SoundShoot)
	PlaySFX(e, cfg.SoundNone)
	PlaySFX(e, cfg.SoundHit)

	assert.Equal(t, []cfg.SoundID{cfg.SoundShoot, cfg.SoundHit}, DrainSFX(e))
	assert.Empty(t, DrainSFX(e))
}

func TestQueueEventSounds(t *testing.T) {
	e := newPlayingECS(t)
	QueueEventSounds(e)
	assert.Empty(t, DrainSFX(e))

	events := GetEvents(e)
	events.ShotsFired = 2
	events.BulletHits = 1
	events.Destroyed = append(events.Destroyed, components.DestroyedEvent{Cause: components.CauseBullet})
	QueueEventSounds(e)
	assert.Equal(t, []cfg.SoundID{cfg.SoundShoot, cfg.SoundHit, cfg.SoundExplosion}, DrainSFX(e))

	events.Clear()
	events.Pickups = append(events.Pickups, components.PowerupPickupEvent{Type: cfg.PowerupSpeed})
	events.Collisions = append(events.Collisions, components.CollisionEvent{})
	QueueEventSounds(e)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit, cfg.SoundPowerup}, DrainSFX(e))
}

func TestCombatTickQueuesSounds(t *testing.T) {
	e := newPlayingECS(t)
	factory.CreateEnemy(e, cfg.EnemySmall, gamemath.Vec(0, 100))
	factory.CreateBullet(e, gamemath.Vec(0, 100))
	factory.CreateBullet(e, gamemath.Vec(0, 100))

	UpdateCollisions(e)
	UpdateScoring(e)
	QueueEventSounds(e)

	assert.Equal(t, 2, GetEvents(e).BulletHits)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit, cfg.SoundExplosion}, DrainSFX(e))
}

func TestSynthesizeTone(t *testing.T) {
	pcm := SynthesizeTone(cfg.Tone{Frequency: 100, Duration: 0.5, Volume: 0.5}, 44100)
	require.Len(t, pcm, 22050*4)

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	assert.Greater(t, first, int16(0))
	assert.Equal(t, pcm[0:2], pcm[2:4], "both channels carry the same sample")

	// Second half of the first period is negative.
	half := int16(binary.LittleEndian.Uint16(pcm[4*300:]))
	assert.Less(t, half, int16(0))
}

func TestSynthesizeToneRejectsEmpty(t *testing.T) {
	assert.Nil(t, SynthesizeTone(cfg.Tone{}, 44100))
	assert.Nil(t, SynthesizeTone(cfg.Tone{Frequency: 440, Duration: 1}, 0))
}
