package factory

import (
	"github.com/automoto/starshooter/archetypes"
	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateSpaceForViewport sizes the space to the viewport plus the configured
// margin on every side.
func CreateSpaceForViewport(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	m := cfg.Space.Margin
	return CreateSpace(ecs, int(width)+2*m, int(height)+2*m, cfg.Space.CellSize, cfg.Space.CellSize)
}

// ResizeSpace regrids the space for a new viewport and re-registers every
// object at its entity's current box. Without a space it does nothing.
func ResizeSpace(w donburi.World, width, height float64) {
	spaceEntry, ok := components.Space.First(w)
	if !ok || width <= 0 || height <= 0 {
		return
	}
	space := components.Space.Get(spaceEntry)

	var objects []*donburi.Entry
	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		if obj == nil || !e.HasComponent(components.Transform) || !e.HasComponent(components.Bounds) {
			return
		}
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}
		objects = append(objects, e)
	})

	m := cfg.Space.Margin
	space.Resize((int(width)+2*m)/space.CellWidth, (int(height)+2*m)/space.CellHeight)

	for _, e := range objects {
		obj := components.Object.Get(e).Object
		PlaceObject(obj, components.Transform.Get(e).Position, components.Bounds.Get(e).Size, width, height)
		space.Add(obj)
	}

	zap.L().Debug("collision space resized",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("objects", len(objects)),
	)
}

// PlaceObject moves obj to cover a world box. World space is centered with
// +Y up; the space grid starts top-left with +Y down, offset by the margin.
// The box is padded by a pixel so edge contact still shares a cell.
func PlaceObject(obj *resolv.Object, center, size gamemath.Vector2, width, height float64) {
	m := float64(cfg.Space.Margin)
	obj.X = center.X - size.X/2 + width/2 + m - 1
	obj.Y = height/2 - (center.Y + size.Y/2) + m - 1
	obj.W = size.X + 2
	obj.H = size.Y + 2
	if obj.Space != nil {
		obj.Update()
	}
}

func attachObject(w donburi.World, e *donburi.Entry, tag string) {
	t := components.Transform.Get(e)
	b := components.Bounds.Get(e)
	width, height := viewportSize(w)

	obj := resolv.NewObject(0, 0, b.Size.X, b.Size.Y, tag)
	obj.Data = e
	PlaceObject(obj, t.Position, b.Size, width, height)
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func viewportSize(w donburi.World) (float64, float64) {
	if entry, ok := components.Viewport.First(w); ok {
		vp := components.Viewport.Get(entry)
		if vp.Valid() {
			return vp.Width, vp.Height
		}
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}
