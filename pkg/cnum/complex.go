package cnum

import (
	"fmt"
	"math"
)

// Complex is a complex number re + i*im.
//
// All methods take value receivers and return new values; no method modifies
// its operands. Results follow IEEE-754 rules, so dividing by zero produces
// infinite or NaN components rather than an error.
type Complex struct {
	Re float64
	Im float64
}

var (
	Zero = Complex{}
	One  = Complex{Re: 1.0}
	I    = Complex{Im: 1.0}
)

func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns re + 0i.
func Real(re float64) Complex {
	return Complex{Re: re}
}

func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

func (a Complex) Complex128() complex128 {
	return complex(a.Re, a.Im)
}

func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func (a Complex) Sub(b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns (a.Re*b.Re - a.Im*b.Im) + i(a.Re*b.Im + a.Im*b.Re).
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div multiplies a by the conjugate of b and divides by |b|^2.
// A zero b yields non-finite components.
func (a Complex) Div(b Complex) Complex {
	n := b.NormSqr()
	return Complex{
		Re: (a.Re*b.Re + a.Im*b.Im) / n,
		Im: (a.Im*b.Re - a.Re*b.Im) / n,
	}
}

func (a Complex) Neg() Complex {
	return Complex{Re: -a.Re, Im: -a.Im}
}

// NormSqr is the squared magnitude. Prefer it to Norm for threshold
// comparisons.
func (a Complex) NormSqr() float64 {
	return a.Re*a.Re + a.Im*a.Im
}

func (a Complex) Norm() float64 {
	return math.Sqrt(a.NormSqr())
}

func (a Complex) Conj() Complex {
	return Complex{Re: a.Re, Im: -a.Im}
}

// Scale multiplies both components by t.
func (a Complex) Scale(t float64) Complex {
	return Complex{Re: a.Re * t, Im: a.Im * t}
}

// Unscale divides both components by t.
func (a Complex) Unscale(t float64) Complex {
	return Complex{Re: a.Re / t, Im: a.Im / t}
}

// Inv returns 1/a.
func (a Complex) Inv() Complex {
	n := a.NormSqr()
	return Complex{Re: a.Re / n, Im: -a.Im / n}
}

// Pow raises a to the non-negative integer power n by repeated
// multiplication. Pow(0) is One for every a, including Zero.
func (a Complex) Pow(n uint) Complex {
	out := One
	for ; n > 0; n-- {
		out = out.Mul(a)
	}
	return out
}

// IsZero reports whether both components are exactly zero.
func (a Complex) IsZero() bool {
	return a.Re == 0.0 && a.Im == 0.0
}

// IsFinite reports whether neither component is infinite or NaN.
func (a Complex) IsFinite() bool {
	return !math.IsInf(a.Re, 0) && !math.IsNaN(a.Re) &&
		!math.IsInf(a.Im, 0) && !math.IsNaN(a.Im)
}

func (a Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", a.Re, a.Im)
}
