package palette

import (
	"github.com/willbeason/polybrot/pkg/bitmap"
	"github.com/willbeason/polybrot/pkg/escape"
	"math"
)

var LightBlue = bitmap.Pixel{R: 0x7f, G: 0xaf, B: 0xff}

// Brightness shades a value grid with tint. Values near zero are brightest,
// brightness falls off with magnitude, and non-finite values are black. The
// brightest cell receives the full tint.
func Brightness(grid escape.ValueGrid, tint bitmap.Pixel) PixelBuffer {
	weights := make([][]float64, len(grid))
	maxWeight := 0.0
	for y, row := range grid {
		weights[y] = make([]float64, len(row))
		for x, z := range row {
			if !z.IsFinite() {
				continue
			}
			w := 1.0 / (1.0 + math.Log1p(z.Norm()))
			weights[y][x] = w
			maxWeight = math.Max(maxWeight, w)
		}
	}
	if maxWeight <= 0.0 {
		maxWeight = 1.0
	}
	invMax := 1.0 / maxWeight

	result := make(PixelBuffer, len(grid))
	for y, row := range weights {
		result[y] = make([]bitmap.Pixel, len(row))
		for x, w := range row {
			br := w * invMax
			result[y][x] = bitmap.Pixel{
				R: uint8(float64(tint.R) * br),
				G: uint8(float64(tint.G) * br),
				B: uint8(float64(tint.B) * br),
			}
		}
	}
	return result
}
