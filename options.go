package glyph

// Option configures a Shape during creation.
//
// Example:
//
//	// Default square glyph
//	s := glyph.Square()
//
//	// Tighter square with a wider glow
//	s := glyph.Square(glyph.WithMargin(6), glyph.WithGlowThickness(6))
type Option func(*Shape)

// WithMargin sets the inset of the shape from the canvas edge, in pixels.
// Margins of Size/2 or more are rejected by Rasterize.
func WithMargin(margin int) Option {
	return func(s *Shape) {
		s.margin = margin
	}
}

// WithOutlineThickness sets the distance threshold of the solid outline.
// Pixels within this distance of the boundary, on either side, are drawn
// in the outline color.
func WithOutlineThickness(t float64) Option {
	return func(s *Shape) {
		s.outlineThickness = t
	}
}

// WithGlowThickness sets the distance range of the glow falloff. The glow
// extends this far outward from the boundary, and the same distance
// inward beyond the outline band.
func WithGlowThickness(t float64) Option {
	return func(s *Shape) {
		s.glowThickness = t
	}
}

// WithOutlineColor sets the color of the solid outline.
// The default is opaque black.
func WithOutlineColor(p Pixel) Option {
	return func(s *Shape) {
		s.outlineColor = p
	}
}

// WithGlowTint sets the RGB tint of the glow. The alpha channel of the
// tint is ignored; glow alpha always comes from the distance falloff.
// The default is white.
func WithGlowTint(p Pixel) Option {
	return func(s *Shape) {
		s.glowTint = p
	}
}
