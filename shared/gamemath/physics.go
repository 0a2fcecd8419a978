package gamemath

// Clamp limits v to [lo, hi]. When lo > hi the midpoint is returned.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Integrate advances pos along dir at speed for dt seconds.
func Integrate(pos, dir Vector2, speed, dt float64) Vector2 {
	return pos.Add(dir.MulScalar(speed * dt))
}

// ConfineToViewport keeps a box of the given size fully inside a viewport
// centered on the origin.
func ConfineToViewport(pos, size Vector2, width, height float64) Vector2 {
	halfW, halfH := width/2, height/2
	return Vector2{
		X: Clamp(pos.X, -halfW+size.X/2, halfW-size.X/2),
		Y: Clamp(pos.Y, -halfH+size.Y/2, halfH-size.Y/2),
	}
}
