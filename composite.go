package glyph

const (
	// glowPeakAlpha is the glow alpha at the boundary, before falloff.
	glowPeakAlpha = 150

	// glowMinAlpha is the suppression threshold: glow alphas at or below
	// this value render as fully transparent to avoid near-invisible
	// speckling at the glow's outer fringe.
	glowMinAlpha = 10
)

// composite resolves one pixel from its distance-field sample.
//
// Rules are evaluated in priority order:
//  1. outline: within outlineThickness of the boundary, on either side
//  2. outer glow: outside, within glowThickness of the boundary
//  3. inner glow: inside, in the band (outlineThickness,
//     outlineThickness+glowThickness]
//
// The outline always wins over glow; the outline and inner-glow bands are
// disjoint by construction. Pixels matching no rule stay transparent.
func (s Shape) composite(dist float64, inside bool) Pixel {
	if dist <= s.outlineThickness {
		return s.outlineColor
	}
	if !inside {
		if dist <= s.glowThickness {
			return s.glowPixel(dist / s.glowThickness)
		}
		return Transparent
	}
	if dist <= s.outlineThickness+s.glowThickness {
		return s.glowPixel((dist - s.outlineThickness) / s.glowThickness)
	}
	return Transparent
}

// glowPixel produces the glow color at normalized falloff position t,
// where t=0 is the boundary and t=1 the glow's outer limit.
//
// The alpha multiplication truncates rather than rounds: shipped icon
// assets were generated with truncation and output must stay
// byte-identical to them.
func (s Shape) glowPixel(t float64) Pixel {
	alpha := int(glowPeakAlpha * (1 - t))
	if alpha <= glowMinAlpha {
		return Transparent
	}
	return Pixel{R: s.glowTint.R, G: s.glowTint.G, B: s.glowTint.B, A: uint8(alpha)}
}
