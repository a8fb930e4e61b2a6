package transforms

import "github.com/willbeason/polybrot/pkg/cnum"

// A Transform advances an iterated value z for the sample point c.
type Transform interface {
	Next(z, c cnum.Complex) cnum.Complex
}

// Iterate applies t to z0 n times for the sample point c and returns the
// final value.
func Iterate(t Transform, z0, c cnum.Complex, n int) cnum.Complex {
	z := z0
	for i := 0; i < n; i++ {
		z = t.Next(z, c)
	}
	return z
}

var (
	_ Transform = Mandelbrot{}
	_ Transform = Julia{}
)
