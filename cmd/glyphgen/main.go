// Command glyphgen generates the map-marker icon glyphs: a hollow
// upward triangle and a hollow square, written as 32x32 TGA files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/glyph"
)

func main() {
	var (
		out     = flag.String("out", "img", "output directory")
		preview = flag.Int("preview", 0, "also write PNG outline previews at this scale (0 disables)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*out, *preview); err != nil {
		log.Fatalf("glyphgen: %v", err)
	}

	fmt.Println("\nDone! Triangle + Square TGA files created.")
}

func run(dir string, previewScale int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	glyphs := []struct {
		name  string
		shape glyph.Shape
	}{
		{"triangle", glyph.TriangleUp()},
		{"square", glyph.Square()},
	}

	for _, gl := range glyphs {
		grid, err := glyph.Rasterize(gl.shape)
		if err != nil {
			return err
		}

		path := filepath.Join(dir, gl.name+".tga")
		if err := glyph.SaveTGA(path, grid); err != nil {
			return err
		}
		fmt.Printf("Created: %s\n", path)

		if previewScale > 0 {
			img, err := glyph.RenderPreview(gl.shape, previewScale)
			if err != nil {
				return err
			}
			if err := savePNG(filepath.Join(dir, gl.name+"_preview.png"), img); err != nil {
				return err
			}
		}
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Created: %s\n", path)
	return nil
}
