// Package bitmap is an RGB image container that can be saved as BMP or PNG.
package bitmap

import (
	"errors"
	"fmt"
	"golang.org/x/image/bmp"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrSize   = errors.New("image dimensions must be positive")
	ErrFormat = errors.New("unsupported image format")
)

type Format int

const (
	BMP Format = iota
	PNG
)

func (f Format) String() string {
	switch f {
	case BMP:
		return "bmp"
	case PNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks a Format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return BMP, nil
	case ".png":
		return PNG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
}

// Pixel is an 8-bit RGB triple.
type Pixel struct {
	R, G, B uint8
}

// Image is a fixed-size opaque RGB image.
type Image struct {
	img *image.RGBA
}

func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	return &Image{img: img}, nil
}

func (m *Image) Width() int {
	return m.img.Rect.Dx()
}

func (m *Image) Height() int {
	return m.img.Rect.Dy()
}

// Coordinates lists every (x, y) in the image, row by row from the top.
func (m *Image) Coordinates() []image.Point {
	w, h := m.Width(), m.Height()

	result := make([]image.Point, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			result = append(result, image.Point{X: x, Y: y})
		}
	}

	return result
}

// SetPixel sets the color at (x, y). Coordinates outside the image are ignored.
func (m *Image) SetPixel(x, y int, p Pixel) {
	m.img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
}

func (m *Image) Pixel(x, y int) Pixel {
	c := m.img.RGBAAt(x, y)
	return Pixel{R: c.R, G: c.G, B: c.B}
}

// RGBA exposes the underlying image.
func (m *Image) RGBA() *image.RGBA {
	return m.img
}

func (m *Image) Encode(w io.Writer, f Format) error {
	switch f {
	case BMP:
		return bmp.Encode(w, m.img)
	case PNG:
		return png.Encode(w, m.img)
	default:
		return fmt.Errorf("%w: %v", ErrFormat, f)
	}
}

// Save writes the image to path in the format implied by its extension,
// creating parent directories as needed.
func (m *Image) Save(path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	err = m.Encode(out, f)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return out.Close()
}
