package transforms

import (
	"github.com/willbeason/polybrot/pkg/cnum"
	"github.com/willbeason/polybrot/pkg/polynomial"
)

// Mandelbrot generalizes z^2 + c to P(z) + c for an arbitrary polynomial P.
type Mandelbrot struct {
	P polynomial.Polynomial
}

func (m Mandelbrot) Next(z, c cnum.Complex) cnum.Complex {
	return m.P.Eval(z).Add(c)
}
