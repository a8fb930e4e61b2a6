// Package palette turns escape-time grids into pixel buffers.
package palette

import (
	"github.com/willbeason/polybrot/pkg/bitmap"
	"github.com/willbeason/polybrot/pkg/escape"
	"math"
)

// Palette is a linear color ramp.
//
// For a count v each channel is |255*inverted - (Base - v)*Mod|, saturated to
// [0, 255]. Base picks the starting color and Mod the rate of change per
// escape count.
type Palette struct {
	BaseR, BaseG, BaseB uint8
	ModR, ModG, ModB    int
}

// Classic is white fading at different rates per channel.
var Classic = Palette{
	BaseR: 255,
	BaseG: 255,
	BaseB: 255,
	ModR:  10,
	ModG:  7,
	ModB:  4,
}

// PixelBuffer is indexed [row][column], aligned with the grid it came from.
type PixelBuffer [][]bitmap.Pixel

// Size returns the number of columns and rows in b.
func (b PixelBuffer) Size() (width, height int) {
	if len(b) == 0 {
		return 0, 0
	}
	return len(b[0]), len(b)
}

// Image copies b into a new bitmap.Image.
func (b PixelBuffer) Image() (*bitmap.Image, error) {
	width, height := b.Size()

	img, err := bitmap.New(width, height)
	if err != nil {
		return nil, err
	}

	for _, p := range img.Coordinates() {
		img.SetPixel(p.X, p.Y, b[p.Y][p.X])
	}

	return img, nil
}

// Channel computes a single channel value.
func Channel(v int, base uint8, mod int, inverted bool) uint8 {
	invert := 0
	if inverted {
		invert = 255
	}

	c := invert - (int(base)-v)*mod
	if c < 0 {
		c = -c
	}

	return uint8(min(c, math.MaxUint8))
}

func (p Palette) Pixel(v int, inverted bool) bitmap.Pixel {
	return bitmap.Pixel{
		R: Channel(v, p.BaseR, p.ModR, inverted),
		G: Channel(v, p.BaseG, p.ModG, inverted),
		B: Channel(v, p.BaseB, p.ModB, inverted),
	}
}

// MakePixels colors every cell of grid. Cells that never escaped get the same
// treatment as any other count; see RemapPrisoners.
func MakePixels(grid escape.CountGrid, p Palette, inverted bool) PixelBuffer {
	result := make(PixelBuffer, len(grid))
	for y, row := range grid {
		result[y] = make([]bitmap.Pixel, len(row))
		for x, v := range row {
			result[y][x] = p.Pixel(v, inverted)
		}
	}
	return result
}

// RemapPrisoners returns a copy of grid with every cell equal to bound
// replaced by value.
func RemapPrisoners(grid escape.CountGrid, bound, value int) escape.CountGrid {
	result := make(escape.CountGrid, len(grid))
	for y, row := range grid {
		result[y] = make([]int, len(row))
		for x, v := range row {
			if v == bound {
				v = value
			}
			result[y][x] = v
		}
	}
	return result
}
