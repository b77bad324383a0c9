package glyph

import "fmt"

// Kind identifies which glyph a Shape renders.
type Kind uint8

const (
	// KindTriangle is the hollow upward-pointing triangle glyph.
	KindTriangle Kind = iota

	// KindSquare is the hollow square glyph.
	KindSquare
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindSquare:
		return "square"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape holds the immutable geometry and styling parameters of one glyph.
// Construct with TriangleUp or Square and customize with Options; the
// zero value is not a valid shape.
type Shape struct {
	kind             Kind
	margin           int     // inset from the canvas edge, in pixels
	outlineThickness float64 // distance threshold of the solid edge
	glowThickness    float64 // distance range of the glow falloff
	outlineColor     Pixel
	glowTint         Pixel // RGB of the glow; alpha comes from the falloff
}

// Default styling shared by both glyphs.
const (
	defaultOutlineThickness = 1.0
	defaultGlowThickness    = 4.5

	defaultTriangleMargin = 7
	defaultSquareMargin   = 8
)

// TriangleUp returns the hollow upward-pointing triangle glyph with its
// default parameters, customized by any options given.
func TriangleUp(opts ...Option) Shape {
	s := Shape{
		kind:             KindTriangle,
		margin:           defaultTriangleMargin,
		outlineThickness: defaultOutlineThickness,
		glowThickness:    defaultGlowThickness,
		outlineColor:     Black,
		glowTint:         White,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Square returns the hollow square glyph with its default parameters,
// customized by any options given.
func Square(opts ...Option) Shape {
	s := Shape{
		kind:             KindSquare,
		margin:           defaultSquareMargin,
		outlineThickness: defaultOutlineThickness,
		glowThickness:    defaultGlowThickness,
		outlineColor:     Black,
		glowTint:         White,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Kind returns which glyph this shape renders.
func (s Shape) Kind() Kind {
	return s.kind
}

// validate rejects parameter combinations that cannot produce a glyph.
// A margin of Size/2 or more leaves no interior at all.
func (s Shape) validate() error {
	if s.margin < 0 {
		return fmt.Errorf("glyph: margin must not be negative, got %d", s.margin)
	}
	if s.margin >= Size/2 {
		return fmt.Errorf("glyph: margin %d leaves no shape area on a %dx%d canvas (must be < %d)",
			s.margin, Size, Size, Size/2)
	}
	if s.outlineThickness <= 0 {
		return fmt.Errorf("glyph: outline thickness must be positive, got %g", s.outlineThickness)
	}
	if s.glowThickness <= 0 {
		return fmt.Errorf("glyph: glow thickness must be positive, got %g", s.glowThickness)
	}
	return nil
}

// triangleVertices returns the triangle's corners on the canvas:
// apex at top center, base corners at the bottom margin line.
func (s Shape) triangleVertices() (top, bottomLeft, bottomRight Point) {
	m := float64(s.margin)
	top = Pt(Size/2, m)
	bottomLeft = Pt(m, Size-m-1)
	bottomRight = Pt(Size-m-1, Size-m-1)
	return top, bottomLeft, bottomRight
}

// squareBounds returns the square's inclusive edge coordinates.
func (s Shape) squareBounds() (left, top, right, bottom float64) {
	m := float64(s.margin)
	return m, m, Size - m - 1, Size - m - 1
}

// outlinePolygon returns the closed outline path of the shape, used by
// the vector preview renderer.
func (s Shape) outlinePolygon() []Point {
	switch s.kind {
	case KindSquare:
		left, top, right, bottom := s.squareBounds()
		return []Point{
			Pt(left, top),
			Pt(right, top),
			Pt(right, bottom),
			Pt(left, bottom),
		}
	default:
		a, b, c := s.triangleVertices()
		return []Point{a, b, c}
	}
}
