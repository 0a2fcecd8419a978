package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Vector2 is a position or direction in world units (origin at screen center, +Y up).
type Vector2 = dmath.Vec2

func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}
