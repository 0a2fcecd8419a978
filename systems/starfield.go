package systems

import (
	"math/rand/v2"

	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SetStarfieldPreset eases the background scroll speed toward a preset.
func SetStarfieldPreset(e *ecs.ECS, preset cfg.StarSpeed) {
	sf := getStarfield(e)
	target := cfg.Starfield.Speeds[preset]
	sf.Preset = preset
	if sf.Speed == target {
		sf.Tween = nil
		return
	}
	sf.Tween = gween.New(float32(sf.Speed), float32(target), float32(cfg.Starfield.EaseDuration), ease.OutQuad)
}

// UpdateStarfield scrolls the background. It runs in every state so menus
// and the pause screen keep their backdrop.
func UpdateStarfield(e *ecs.ECS) {
	sf := getStarfield(e)
	vp := GetViewport(e)
	if !vp.Valid() {
		return
	}
	dt := GetClock(e).Delta

	if len(sf.Stars) == 0 {
		sf.Stars = scatterStars(cfg.Starfield.Stars, vp.Width, vp.Height)
	}

	if sf.Tween != nil {
		speed, done := sf.Tween.Update(float32(dt))
		sf.Speed = float64(speed)
		if done {
			sf.Tween = nil
		}
	}

	if GetGameState(e).Active {
		dirX := MovementDirection(getOrCreateInput(e)).X
		sf.DirectionModifier = gamemath.Clamp(
			sf.DirectionModifier+dirX*cfg.Starfield.DriftRate*dt,
			-cfg.Starfield.MaxDrift, cfg.Starfield.MaxDrift,
		)
	}

	halfW, halfH := vp.Width/2, vp.Height/2
	for i := range sf.Stars {
		star := &sf.Stars[i]
		v := sf.Speed * cfg.Starfield.BaseSpeed * (0.25 + 0.75*star.Depth) * dt
		star.Position.Y -= v
		star.Position.X -= v * sf.DirectionModifier
		star.Position.X = wrap(star.Position.X, -halfW, halfW)
		star.Position.Y = wrap(star.Position.Y, -halfH, halfH)
	}
}

func scatterStars(n int, width, height float64) []components.Star {
	rng := rand.New(rand.NewPCG(7, 11))
	stars := make([]components.Star, n)
	for i := range stars {
		stars[i] = components.Star{
			Position: gamemath.Vec((rng.Float64()-0.5)*width, (rng.Float64()-0.5)*height),
			Depth:    rng.Float64(),
		}
	}
	return stars
}

func wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return v
	}
	for v < lo {
		v += span
	}
	for v >= hi {
		v -= span
	}
	return v
}
