package glyph

import "math"

// Rasterize renders the shape into a fresh Size×Size canvas.
//
// Rasterization is a pure function of the shape parameters: for every
// pixel center it computes the minimum distance to the shape boundary and
// the inside/outside classification, then applies the compositing rules.
// The same shape always produces a byte-identical grid.
func Rasterize(s Shape) (*Grid, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	g := NewCanvas()
	switch s.kind {
	case KindSquare:
		rasterizeSquare(g, s)
	default:
		rasterizeTriangle(g, s)
	}

	Logger().Debug("rasterized glyph",
		"kind", s.kind.String(),
		"margin", s.margin,
		"outline", s.outlineThickness,
		"glow", s.glowThickness)
	return g, nil
}

// RasterizeTriangle renders the default upward triangle glyph.
func RasterizeTriangle() (*Grid, error) {
	return Rasterize(TriangleUp())
}

// RasterizeSquare renders the default square glyph.
func RasterizeSquare() (*Grid, error) {
	return Rasterize(Square())
}

// rasterizeTriangle samples the triangle's distance field per pixel. The
// boundary distance is the minimum over the three edges, each treated as
// a line segment.
func rasterizeTriangle(g *Grid, s Shape) {
	top, bl, br := s.triangleVertices()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := Pt(float64(x), float64(y))
			dist := math.Min(
				DistanceToSegment(p, top, bl),
				math.Min(
					DistanceToSegment(p, bl, br),
					DistanceToSegment(p, br, top),
				),
			)
			inside := PointInTriangle(p, top, bl, br)
			g.SetPixel(x, y, s.composite(dist, inside))
		}
	}
}

// rasterizeSquare samples the square's distance field per pixel via the
// axis-aligned rectangle distance.
func rasterizeSquare(g *Grid, s Shape) {
	left, top, right, bottom := s.squareBounds()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			dist, inside := rectEdgeDistance(float64(x), float64(y), left, top, right, bottom)
			g.SetPixel(x, y, s.composite(dist, inside))
		}
	}
}
