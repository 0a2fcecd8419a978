package systems

import (
	"testing"

	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/systems/factory"
	"github.com/automoto/starshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 1280.0
	testHeight = 720.0
)

// scriptedRand replays queued values and then returns zeros.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type worldOptions struct {
	state   cfg.GameStateID
	rng     components.Rand
	noSpace bool
}

func newTestECS(t *testing.T, opts worldOptions) *ecs.ECS {
	t.Helper()
	if opts.rng == nil {
		opts.rng = &scriptedRand{}
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, factory.SessionOptions{
		Width:  testWidth,
		Height: testHeight,
		Rand:   opts.rng,
		State:  opts.state,
	})
	if !opts.noSpace {
		factory.CreateSpaceForViewport(e, testWidth, testHeight)
	}
	return e
}

func newPlayingECS(t *testing.T) *ecs.ECS {
	return newTestECS(t, worldOptions{state: cfg.GameStatePlaying})
}

func setPolicy(t *testing.T, p cfg.CollisionPolicy) {
	t.Helper()
	prev := cfg.Combat.Policy
	cfg.Combat.Policy = p
	t.Cleanup(func() { cfg.Combat.Policy = prev })
}

func countTagged(e *ecs.ECS, tag taggedSet) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countEnemies(e *ecs.ECS) int {
	return countTagged(e, tags.Enemy)
}

func health(entry *donburi.Entry) int {
	return components.Health.Get(entry).Current
}
