package components

import (
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type Star struct {
	Position gamemath.Vector2
	Depth    float64 // 0..1, nearer stars move faster and draw brighter
}

// StarfieldData animates the scrolling background.
type StarfieldData struct {
	Preset            cfg.StarSpeed
	Speed             float64
	Tween             *gween.Tween
	DirectionModifier float64
	Stars             []Star
}

var Starfield = donburi.NewComponentType[StarfieldData]()
