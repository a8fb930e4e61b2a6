// Package polynomial evaluates polynomials with real coefficients at complex
// arguments.
package polynomial

import (
	"errors"
	"fmt"
	"github.com/willbeason/polybrot/pkg/cnum"
	"strings"
)

var ErrEmpty = errors.New("polynomial has no coefficients")

// A Polynomial is an immutable sequence of real coefficients.
// Index 0 is the constant term; index k is the coefficient of z^k.
type Polynomial struct {
	coeff []float64
}

// New copies coefficients into a Polynomial. At least one coefficient is
// required; a single coefficient is a constant.
func New(coefficients []float64) (Polynomial, error) {
	if len(coefficients) == 0 {
		return Polynomial{}, ErrEmpty
	}

	coeff := make([]float64, len(coefficients))
	copy(coeff, coefficients)

	return Polynomial{coeff: coeff}, nil
}

// Must is like New but panics on empty input. Intended for literals.
func Must(coefficients ...float64) Polynomial {
	p, err := New(coefficients)
	if err != nil {
		panic(err)
	}
	return p
}

// Coefficients returns a copy of p's coefficients, constant term first.
func (p Polynomial) Coefficients() []float64 {
	result := make([]float64, len(p.coeff))
	copy(result, p.coeff)
	return result
}

// Len is the number of stored coefficients, which may include high-degree
// zeros.
func (p Polynomial) Len() int {
	return len(p.coeff)
}

// Degree is the index of the highest non-zero coefficient, or 0 for a
// constant.
func (p Polynomial) Degree() int {
	for d := len(p.coeff) - 1; d > 0; d-- {
		if p.coeff[d] != 0.0 {
			return d
		}
	}
	return 0
}

// Eval evaluates p at x with Horner's rule, folding from the highest degree
// down: acc = acc*x + c_k.
//
// Evaluation at exactly 0+0i returns the constant term directly.
func (p Polynomial) Eval(x cnum.Complex) cnum.Complex {
	if len(p.coeff) == 0 {
		return cnum.Zero
	}
	if x.IsZero() {
		return cnum.Real(p.coeff[0])
	}

	acc := cnum.Zero
	for i := len(p.coeff) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(cnum.Real(p.coeff[i]))
	}

	return acc
}

// Add returns p + q. The result has as many coefficients as the longer
// operand.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return combine(p, q, 1.0)
}

// Sub returns p - q. Coefficients q has beyond p's length are negated.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return combine(p, q, -1.0)
}

func combine(p, q Polynomial, sign float64) Polynomial {
	n := max(len(p.coeff), len(q.coeff))

	result := make([]float64, n)
	copy(result, p.coeff)
	for i, c := range q.coeff {
		result[i] += sign * c
	}

	return Polynomial{coeff: result}
}

// Mul returns the product p*q by convolving coefficients. The result has
// len(p)+len(q)-1 coefficients.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeff) == 0 || len(q.coeff) == 0 {
		return Polynomial{}
	}

	result := make([]float64, len(p.coeff)+len(q.coeff)-1)
	for i, a := range p.coeff {
		for j, b := range q.coeff {
			result[i+j] += a * b
		}
	}

	return Polynomial{coeff: result}
}

// Equal reports whether p and q have identical coefficient sequences.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeff) != len(q.coeff) {
		return false
	}
	for i := range p.coeff {
		if p.coeff[i] != q.coeff[i] {
			return false
		}
	}
	return true
}

func (p Polynomial) String() string {
	var terms []string
	for d := len(p.coeff) - 1; d >= 0; d-- {
		c := p.coeff[d]
		if c == 0.0 && len(p.coeff) > 1 {
			continue
		}

		switch d {
		case 0:
			terms = append(terms, fmt.Sprintf("%g", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%gz", c))
		default:
			terms = append(terms, fmt.Sprintf("%gz^%d", c, d))
		}
	}

	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
