package transforms

import (
	"github.com/willbeason/polybrot/pkg/cnum"
	"github.com/willbeason/polybrot/pkg/polynomial"
)

// Julia iterates P(z) alone; the sample point only seeds z and is otherwise
// ignored.
type Julia struct {
	P polynomial.Polynomial
}

func (j Julia) Next(z, _ cnum.Complex) cnum.Complex {
	return j.P.Eval(z)
}
