package systems

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable draw list to avoid allocations
var drawList []*donburi.Entry

// ToScreen maps a world point (origin centered, +Y up) to screen pixels.
func ToScreen(p gamemath.Vector2, width, height float64) (float64, float64) {
	return p.X + width/2, height/2 - p.Y
}

// DrawStarfield renders the scrolling background.
func DrawStarfield(e *ecs.ECS, screen *ebiten.Image) {
	sf := getStarfield(e)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	for _, star := range sf.Stars {
		x, y := ToScreen(star.Position, w, h)
		shade := uint8(80 + 175*star.Depth)
		size := float32(1 + star.Depth)
		vector.FillRect(screen, float32(x), float32(y), size, size, color.RGBA{R: shade, G: shade, B: shade, A: 255}, false)
	}
}

// DrawSprites renders every sprite as a tinted box ordered by Z. Odd frames
// are drawn a little darker so animations read without sprite sheets.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	drawList = drawList[:0]
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Transform) {
			drawList = append(drawList, entry)
		}
	})
	slices.SortStableFunc(drawList, func(a, b *donburi.Entry) int {
		if c := cmp.Compare(components.Transform.Get(a).Z, components.Transform.Get(b).Z); c != 0 {
			return c
		}
		return cmp.Compare(a.Entity(), b.Entity())
	})

	for _, entry := range drawList {
		t := components.Transform.Get(entry)
		sprite := components.Sprite.Get(entry)
		frame := 0
		if entry.HasComponent(components.Animation) {
			frame = components.Animation.Get(entry).Frame()
		}
		x, y := ToScreen(t.Position, w, h)
		vector.FillRect(screen,
			float32(x-sprite.Size.X/2), float32(y-sprite.Size.Y/2),
			float32(sprite.Size.X), float32(sprite.Size.Y),
			frameTint(sprite.Tint, frame), false)
	}

	if cfg.Debug.DrawBounds {
		drawBounds(e, screen, w, h)
	}
}

func frameTint(c color.RGBA, frame int) color.RGBA {
	if frame%2 == 0 {
		return c
	}
	return color.RGBA{R: c.R / 4 * 3, G: c.G / 4 * 3, B: c.B / 4 * 3, A: c.A}
}

// drawBounds outlines collision boxes
func drawBounds(e *ecs.ECS, screen *ebiten.Image, w, h float64) {
	components.Bounds.Each(e.World, func(entry *donburi.Entry) {
		box := entityBox(entry)
		x, y := ToScreen(gamemath.Vec(box.Min().X, box.Max().Y), w, h)
		bw, bh := float32(box.HalfExtent.X*2), float32(box.HalfExtent.Y*2)
		c := cfg.Magenta
		vector.FillRect(screen, float32(x), float32(y), bw, 1, c, false)      // Top
		vector.FillRect(screen, float32(x), float32(y)+bh-1, bw, 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, bh, c, false)      // Left
		vector.FillRect(screen, float32(x)+bw-1, float32(y), 1, bh, c, false) // Right
	})
}
