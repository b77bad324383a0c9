package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// Size is the fixed edge length of the glyph canvas, in pixels. Every
// rasterized glyph is exactly Size×Size; the TGA encoder rejects
// anything else.
const Size = 32

// Grid represents a rectangular RGBA pixel buffer with a top-left origin.
type Grid struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewGrid creates a new grid with the given dimensions, fully transparent.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewCanvas creates a new Size×Size glyph canvas.
func NewCanvas() *Grid {
	return NewGrid(Size, Size)
}

// Width returns the width of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid.
func (g *Grid) Height() int {
	return g.height
}

// Data returns the raw pixel data (RGBA format, row-major from the top).
func (g *Grid) Data() []uint8 {
	return g.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (g *Grid) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	i := (y*g.width + x) * 4
	g.data[i+0] = p.R
	g.data[i+1] = p.G
	g.data[i+2] = p.B
	g.data[i+3] = p.A
}

// PixelAt returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (g *Grid) PixelAt(x, y int) Pixel {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Transparent
	}
	i := (y*g.width + x) * 4
	return Pixel{
		R: g.data[i+0],
		G: g.data[i+1],
		B: g.data[i+2],
		A: g.data[i+3],
	}
}

// Clear fills the entire grid with a color.
func (g *Grid) Clear(p Pixel) {
	for i := 0; i < len(g.data); i += 4 {
		g.data[i+0] = p.R
		g.data[i+1] = p.G
		g.data[i+2] = p.B
		g.data[i+3] = p.A
	}
}

// ToImage converts the grid to an image.NRGBA.
func (g *Grid) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	copy(img.Pix, g.data)
	return img
}

// SavePNG saves the grid to a PNG file.
func (g *Grid) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("glyph: create PNG: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, g.ToImage()); err != nil {
		return fmt.Errorf("glyph: encode PNG: %w", err)
	}
	return nil
}

// SaveBMP saves the grid to a BMP file.
// BMP has no alpha channel; transparent pixels come out black.
func (g *Grid) SaveBMP(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("glyph: create BMP: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := bmp.Encode(f, g.ToImage()); err != nil {
		return fmt.Errorf("glyph: encode BMP: %w", err)
	}
	return nil
}

// At implements the image.Image interface.
func (g *Grid) At(x, y int) color.Color {
	return g.PixelAt(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// ColorModel implements the image.Image interface.
func (g *Grid) ColorModel() color.Model {
	return color.NRGBAModel
}
