package glyph

import (
	"fmt"
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// RenderPreview draws an anti-aliased vector rendering of the glyph's
// outline at scale times the canvas size, for visual inspection of icons
// that are hard to judge at 32×32.
//
// The outline is stroked as a closed path through the shape's vertices in
// the outline color, on a transparent background. The glow is a raster
// effect and is not part of the preview.
func RenderPreview(s Shape, scale int) (*image.NRGBA, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if scale < 1 {
		return nil, fmt.Errorf("glyph: preview scale must be at least 1, got %d", scale)
	}

	dim := Size * scale
	img := image.NewNRGBA(image.Rect(0, 0, dim, dim))
	scanner := rasterx.NewScannerGV(dim, dim, img, img.Bounds())
	dasher := rasterx.NewDasher(dim, dim, scanner)

	// Stroke width spans both sides of the boundary, like the raster
	// outline band.
	width := fixed.Int26_6(2 * s.outlineThickness * float64(scale) * 64)
	dasher.SetStroke(width, 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(s.outlineColor.NRGBA())

	poly := s.outlinePolygon()
	f := float64(scale)
	dasher.Start(rasterx.ToFixedP(poly[0].X*f, poly[0].Y*f))
	for _, p := range poly[1:] {
		dasher.Line(rasterx.ToFixedP(p.X*f, p.Y*f))
	}
	dasher.Stop(true)
	dasher.Draw()

	return img, nil
}
