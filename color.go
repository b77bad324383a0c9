package glyph

import "image/color"

// Pixel represents one RGBA sample with 8-bit channels.
// The zero value is fully transparent black, the background of every grid.
type Pixel struct {
	R, G, B, A uint8
}

// NRGBA converts the pixel to the standard library's non-premultiplied
// color type.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// IsTransparent reports whether the pixel is fully transparent.
func (p Pixel) IsTransparent() bool {
	return p.A == 0
}

// Common colors
var (
	Transparent = Pixel{}
	Black       = Pixel{A: 255}
	White       = Pixel{R: 255, G: 255, B: 255, A: 255}
)
