// Package glyph renders small anti-aliased icon glyphs into fixed-size
// RGBA rasters and serializes them as uncompressed 32-bit TGA files.
//
// # Overview
//
// glyph generates the two map-marker icons used by gathering overlays: a
// hollow upward triangle and a hollow square, each drawn as an opaque
// outline with a soft glow falling off on both sides of the boundary.
// Rendering is driven by a per-pixel distance field: for every pixel the
// minimum Euclidean distance to the shape boundary is computed, the pixel
// is classified as inside or outside the shape, and a priority-ordered
// compositing rule turns that sample into a final color.
//
// # Quick Start
//
//	import "github.com/gogpu/glyph"
//
//	// Rasterize the default triangle glyph
//	g, err := glyph.Rasterize(glyph.TriangleUp())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Write it as a TGA file
//	if err := glyph.SaveTGA("triangle.tga", g); err != nil {
//	    log.Fatal(err)
//	}
//
// Shapes are customized with functional options:
//
//	s := glyph.Square(
//	    glyph.WithMargin(6),
//	    glyph.WithGlowThickness(6),
//	)
//
// # Output Format
//
// The TGA encoder emits exactly one variant of the format: uncompressed
// truecolor, 32 bits per pixel, 8-bit alpha, bottom-left origin. Rows are
// stored bottom-to-top and pixels as B, G, R, A. This byte layout is what
// the consuming rendering environment parses; see EncodeTGA.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The file format's bottom-left origin is an encoding concern only; the
// in-memory Grid is always top-left origin.
//
// # Determinism
//
// Rasterization is a pure function of the shape parameters: the same
// input always produces a byte-identical grid, and glow alpha values are
// truncated rather than rounded so output stays byte-exact with
// previously shipped icon assets.
package glyph

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
