package glyph

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// TGA codec errors.
var (
	// ErrBadDimensions is returned when a grid other than the Size×Size
	// canvas is handed to the encoder.
	ErrBadDimensions = errors.New("glyph: grid is not canvas-sized")

	// ErrInvalidFormat is returned when decoded data is not the
	// uncompressed 32-bit bottom-left-origin TGA subset this package emits.
	ErrInvalidFormat = errors.New("glyph: invalid TGA data")
)

// TGA header constants. The encoder emits exactly one variant of the
// format: uncompressed truecolor, 32 bits per pixel, 8-bit alpha,
// bottom-left origin.
const (
	tgaHeaderLen     = 18
	tgaTypeTruecolor = 2    // uncompressed truecolor image
	tgaBitsPerPixel  = 32   // B, G, R, A
	tgaDescriptor    = 0x08 // 8 alpha bits, bottom-left origin
)

// EncodedLen is the exact size in bytes of an encoded glyph file:
// an 18-byte header followed by Size×Size 4-byte pixels.
const EncodedLen = tgaHeaderLen + Size*Size*4

// EncodeTGA serializes a canvas into a TGA byte stream.
//
// The header is 18 bytes with little-endian dimensions; the pixel stream
// holds rows bottom-to-top (per the bottom-left-origin descriptor) and
// each pixel as B, G, R, A. The channel reordering is mandated by the
// file format and must not be changed to RGBA.
//
// Grids with dimensions other than Size×Size are rejected with
// ErrBadDimensions; no partial output is produced.
func EncodeTGA(g *Grid) ([]byte, error) {
	if g.width != Size || g.height != Size {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrBadDimensions, g.width, g.height, Size, Size)
	}

	buf := make([]byte, 0, EncodedLen)

	var hdr [tgaHeaderLen]byte
	hdr[2] = tgaTypeTruecolor
	binary.LittleEndian.PutUint16(hdr[12:14], Size)
	binary.LittleEndian.PutUint16(hdr[14:16], Size)
	hdr[16] = tgaBitsPerPixel
	hdr[17] = tgaDescriptor
	buf = append(buf, hdr[:]...)

	for y := Size - 1; y >= 0; y-- {
		for x := 0; x < Size; x++ {
			p := g.PixelAt(x, y)
			buf = append(buf, p.B, p.G, p.R, p.A)
		}
	}

	Logger().Debug("encoded TGA", "bytes", len(buf))
	return buf, nil
}

// DecodeTGA parses the TGA subset produced by EncodeTGA back into a grid.
//
// Any deviation from that subset (colormap, compression, non-32-bit
// pixels, top-left origin, truncated data) is rejected with
// ErrInvalidFormat.
func DecodeTGA(data []byte) (*Grid, error) {
	if len(data) < tgaHeaderLen {
		return nil, fmt.Errorf("%w: truncated header (%d bytes)", ErrInvalidFormat, len(data))
	}
	idLen := int(data[0])
	if data[1] != 0 {
		return nil, fmt.Errorf("%w: colormapped images not supported", ErrInvalidFormat)
	}
	if data[2] != tgaTypeTruecolor {
		return nil, fmt.Errorf("%w: image type %d, want %d", ErrInvalidFormat, data[2], tgaTypeTruecolor)
	}
	if data[16] != tgaBitsPerPixel {
		return nil, fmt.Errorf("%w: %d bits per pixel, want %d", ErrInvalidFormat, data[16], tgaBitsPerPixel)
	}
	if data[17] != tgaDescriptor {
		return nil, fmt.Errorf("%w: image descriptor 0x%02x, want 0x%02x", ErrInvalidFormat, data[17], tgaDescriptor)
	}

	width := int(binary.LittleEndian.Uint16(data[12:14]))
	height := int(binary.LittleEndian.Uint16(data[14:16]))
	want := tgaHeaderLen + idLen + width*height*4
	if len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d image, want %d", ErrInvalidFormat, len(data), width, height, want)
	}

	g := NewGrid(width, height)
	off := tgaHeaderLen + idLen
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			g.SetPixel(x, y, Pixel{
				B: data[off+0],
				G: data[off+1],
				R: data[off+2],
				A: data[off+3],
			})
			off += 4
		}
	}
	return g, nil
}

// WriteTGA encodes the grid and writes the full byte stream to w.
func WriteTGA(w io.Writer, g *Grid) error {
	data, err := EncodeTGA(g)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("glyph: write TGA: %w", err)
	}
	return nil
}

// SaveTGA encodes the grid and writes it to a file at path.
//
// The encoding is produced in full before the file is created, so an
// encoding failure never touches the filesystem. A failed write can
// still leave a partial file behind; callers that need atomic
// replacement should write to a temporary path and rename.
func SaveTGA(path string, g *Grid) error {
	data, err := EncodeTGA(g)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("glyph: create TGA: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("glyph: write TGA: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("glyph: close TGA: %w", err)
	}
	return nil
}
