package curve

// extrapolation is the x offset of the synthetic neighbours placed beyond the
// first and last point. It does not scale with segment spacing, so interior
// points closer than this to an end distort the end tangents.
const extrapolation = 0.01

// Sample evaluates the curve through points at t in O(n).
//
// The points must be sorted by x with both components in [0,1], and t is
// expected to lie in [0,1]. The result depends on the number of points:
//
//	0  -> 0
//	1  -> the y of that point
//	2  -> linear blend of both y values by t
//	3  -> linear blend of the first and last y values by t (the middle point is ignored)
//	4+ -> Catmull-Rom interpolation
//
// The 2 and 3 point cases use t directly and do not look at x.
func Sample(points []Vec, t float32) float32 {
	switch len(points) {
	case 0:
		return 0
	case 1:
		return points[0].Y
	case 2:
		return Lerp(points[0].Y, points[1].Y, t)
	case 3:
		return Lerp(points[0].Y, points[2].Y, t)
	}

	last := len(points) - 1
	if t <= 0 {
		return points[0].Y
	}
	if t >= 1 {
		return points[last].Y
	}

	i := segment(points, t)
	edge := Vec{X: extrapolation}

	p0 := points[i]
	p1 := points[last].Add(edge)
	if i < last {
		p1 = points[i+1]
	}
	pm := points[i].Sub(edge)
	if i > 0 {
		pm = points[i-1]
	}
	p2 := points[last].Add(edge)
	if i < last-1 {
		p2 = points[i+2]
	}

	u := (t - p0.X) / (p1.X - p0.X)
	return hermite(u, pm, p0, p1, p2)
}

// segment returns the greatest index whose x is <= t, or 0 when t lies
// before every point.
func segment(points []Vec, t float32) int {
	for i := len(points) - 1; i >= 0; i-- {
		if t >= points[i].X {
			return i
		}
	}
	return 0
}

// hermite evaluates the cubic Hermite segment between a and b at u, with
// tangents taken as centered differences through pm and p2 scaled to the
// length of the segment.
func hermite(u float32, pm, a, b, p2 Vec) float32 {
	u2 := u * u
	u3 := u2 * u

	span := b.X - a.X
	m0 := (b.Y - pm.Y) / (b.X - pm.X) * span
	m1 := (p2.Y - a.Y) / (p2.X - a.X) * span

	return a.Y*(2*u3-3*u2+1) +
		m0*(u3-2*u2+u) +
		b.Y*(3*u2-2*u3) +
		m1*(u3-u2)
}
