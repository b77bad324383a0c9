package glyph

import "testing"

func TestShapeDefaults(t *testing.T) {
	tri := TriangleUp()
	if tri.Kind() != KindTriangle {
		t.Errorf("TriangleUp kind = %v", tri.Kind())
	}
	if tri.margin != 7 || tri.outlineThickness != 1.0 || tri.glowThickness != 4.5 {
		t.Errorf("unexpected triangle defaults: %+v", tri)
	}

	sq := Square()
	if sq.Kind() != KindSquare {
		t.Errorf("Square kind = %v", sq.Kind())
	}
	if sq.margin != 8 || sq.outlineThickness != 1.0 || sq.glowThickness != 4.5 {
		t.Errorf("unexpected square defaults: %+v", sq)
	}

	for _, s := range []Shape{tri, sq} {
		if s.outlineColor != Black {
			t.Errorf("%v default outline color = %+v, want black", s.Kind(), s.outlineColor)
		}
		if s.glowTint != White {
			t.Errorf("%v default glow tint = %+v, want white", s.Kind(), s.glowTint)
		}
	}
}

func TestShapeOptions(t *testing.T) {
	s := Square(
		WithMargin(5),
		WithOutlineThickness(1.5),
		WithGlowThickness(6),
		WithOutlineColor(White),
		WithGlowTint(Pixel{R: 255, A: 255}),
	)
	if s.margin != 5 {
		t.Errorf("margin = %d, want 5", s.margin)
	}
	if s.outlineThickness != 1.5 {
		t.Errorf("outline = %g, want 1.5", s.outlineThickness)
	}
	if s.glowThickness != 6.0 {
		t.Errorf("glow = %g, want 6", s.glowThickness)
	}
	if s.outlineColor != White {
		t.Errorf("outline color = %+v, want white", s.outlineColor)
	}
	if s.glowTint != (Pixel{R: 255, A: 255}) {
		t.Errorf("glow tint = %+v", s.glowTint)
	}
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr bool
	}{
		{"default triangle", TriangleUp(), false},
		{"default square", Square(), false},
		{"zero margin", Square(WithMargin(0)), false},
		{"largest valid margin", Square(WithMargin(Size/2 - 1)), false},
		{"margin at half canvas", Square(WithMargin(Size / 2)), true},
		{"negative margin", TriangleUp(WithMargin(-3)), true},
		{"zero outline", Square(WithOutlineThickness(0)), true},
		{"zero glow", Square(WithGlowThickness(0)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTriangleVertices(t *testing.T) {
	top, bl, br := TriangleUp().triangleVertices()
	if top != Pt(16, 7) {
		t.Errorf("apex = %v, want (16,7)", top)
	}
	if bl != Pt(7, 24) {
		t.Errorf("bottom-left = %v, want (7,24)", bl)
	}
	if br != Pt(24, 24) {
		t.Errorf("bottom-right = %v, want (24,24)", br)
	}
}

func TestSquareBounds(t *testing.T) {
	left, top, right, bottom := Square().squareBounds()
	if left != 8 || top != 8 || right != 23 || bottom != 23 {
		t.Errorf("bounds = (%g, %g, %g, %g), want (8, 8, 23, 23)", left, top, right, bottom)
	}
}

func TestKindString(t *testing.T) {
	if KindTriangle.String() != "triangle" {
		t.Errorf("KindTriangle.String() = %q", KindTriangle.String())
	}
	if KindSquare.String() != "square" {
		t.Errorf("KindSquare.String() = %q", KindSquare.String())
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", Kind(9).String())
	}
}

func TestOutlinePolygon(t *testing.T) {
	if got := TriangleUp().outlinePolygon(); len(got) != 3 {
		t.Errorf("triangle polygon has %d vertices, want 3", len(got))
	}
	sq := Square().outlinePolygon()
	if len(sq) != 4 {
		t.Fatalf("square polygon has %d vertices, want 4", len(sq))
	}
	if sq[0] != Pt(8, 8) || sq[2] != Pt(23, 23) {
		t.Errorf("square polygon corners = %v", sq)
	}
}
