package glyph

import "math"

// DistanceToSegment computes the distance from p to the line segment ab.
//
// The projection of p onto the segment's supporting line is clamped to
// [0, 1], so points beyond either end measure against the nearest
// endpoint rather than the infinite line. A degenerate segment (a == b)
// measures against the single point.
func DistanceToSegment(p, a, b Point) float64 {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(d) / d.LengthSquared()
	t = math.Max(0, math.Min(1, t))
	proj := a.Add(d.Mul(t))
	return p.Distance(proj)
}

// PointInTriangle reports whether p lies inside (or on the boundary of)
// the triangle abc.
//
// Uses the sign-of-cross-product test against all three edges: the point
// is inside iff it is not simultaneously on the positive side of one
// edge and the negative side of another. Works for both winding orders.
func PointInTriangle(p, a, b, c Point) bool {
	d1 := p.Sub(b).Cross(a.Sub(b))
	d2 := p.Sub(c).Cross(b.Sub(c))
	d3 := p.Sub(a).Cross(c.Sub(a))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// rectEdgeDistance computes the minimum distance from (x, y) to the
// boundary of the axis-aligned rectangle [left, right]×[top, bottom],
// along with the containment classification (bounds are inclusive).
//
// Inside, the distance is the minimum perpendicular distance to the four
// sides. Outside, it is the Euclidean distance to the nearest edge or
// corner, computed from the clamped per-axis offsets.
func rectEdgeDistance(x, y, left, top, right, bottom float64) (dist float64, inside bool) {
	inside = left <= x && x <= right && top <= y && y <= bottom
	if inside {
		dist = math.Min(
			math.Min(x-left, right-x),
			math.Min(y-top, bottom-y),
		)
		return dist, true
	}

	dx := math.Max(left-x, math.Max(0, x-right))
	dy := math.Max(top-y, math.Max(0, y-bottom))
	if dx > 0 || dy > 0 {
		dist = math.Hypot(dx, dy)
	}
	return dist, false
}
