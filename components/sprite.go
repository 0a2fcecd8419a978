package components

import (
	"image/color"

	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpriteData is what the renderer needs besides position and frame.
type SpriteData struct {
	Sheet cfg.SheetID
	Size  gamemath.Vector2 // destination size in world units
	Tint  color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
