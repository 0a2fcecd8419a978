package gamemath

import "math"

// Side is the face of box B that box A touched.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "none"
}

// AABB is an axis-aligned box described by its center and half extents.
type AABB struct {
	Center     Vector2
	HalfExtent Vector2
}

// NewAABB builds a box centered on center with the full size given.
func NewAABB(center, size Vector2) AABB {
	return AABB{Center: center, HalfExtent: size.MulScalar(0.5)}
}

func (a AABB) Min() Vector2 {
	return a.Center.Sub(a.HalfExtent)
}

func (a AABB) Max() Vector2 {
	return a.Center.Add(a.HalfExtent)
}

// Intersects tests both axis intervals. Boxes sharing an edge overlap.
func (a AABB) Intersects(b AABB) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y
}

// ClosestPoint returns the point inside a nearest to p.
func (a AABB) ClosestPoint(p Vector2) Vector2 {
	lo, hi := a.Min(), a.Max()
	return Vector2{
		X: Clamp(p.X, lo.X, hi.X),
		Y: Clamp(p.Y, lo.Y, hi.Y),
	}
}

// Collide reports whether a and b overlap and, if so, which side of b was hit.
// The offset from b's closest point to a's center picks the axis; equal
// magnitudes resolve horizontally.
func Collide(a, b AABB) (Side, bool) {
	if !a.Intersects(b) {
		return SideNone, false
	}
	closest := b.ClosestPoint(a.Center)
	offset := a.Center.Sub(closest)
	if math.Abs(offset.X) >= math.Abs(offset.Y) {
		if offset.X < 0 {
			return SideLeft, true
		}
		return SideRight, true
	}
	if offset.Y > 0 {
		return SideTop, true
	}
	return SideBottom, true
}
