package glyph

import "testing"

func TestRenderPreviewDimensions(t *testing.T) {
	for _, scale := range []int{1, 4, 8} {
		img, err := RenderPreview(TriangleUp(), scale)
		if err != nil {
			t.Fatalf("scale %d: %v", scale, err)
		}
		want := Size * scale
		if img.Bounds().Dx() != want || img.Bounds().Dy() != want {
			t.Errorf("scale %d: preview is %dx%d, want %dx%d",
				scale, img.Bounds().Dx(), img.Bounds().Dy(), want, want)
		}
	}
}

func TestRenderPreviewDrawsOutline(t *testing.T) {
	for _, s := range []Shape{TriangleUp(), Square()} {
		img, err := RenderPreview(s, 4)
		if err != nil {
			t.Fatal(err)
		}
		opaque := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				opaque++
			}
		}
		if opaque == 0 {
			t.Errorf("%v: preview is entirely transparent", s.Kind())
		}
	}
}

func TestRenderPreviewInvalidInput(t *testing.T) {
	if _, err := RenderPreview(TriangleUp(), 0); err == nil {
		t.Error("scale 0 accepted, want error")
	}
	if _, err := RenderPreview(TriangleUp(), -2); err == nil {
		t.Error("negative scale accepted, want error")
	}
	if _, err := RenderPreview(Square(WithMargin(Size)), 4); err == nil {
		t.Error("degenerate shape accepted, want error")
	}
}
