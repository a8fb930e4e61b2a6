package escape

import (
	"fmt"
	"github.com/willbeason/polybrot/pkg/cnum"
	"math"
)

// Region is a rectangle of the complex plane. Right must exceed Left and Top
// must exceed Bottom.
type Region struct {
	Left, Right float64
	Bottom, Top float64
}

func (r Region) Validate() error {
	for _, b := range []float64{r.Left, r.Right, r.Bottom, r.Top} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: region bounds must be finite, got %+v", ErrPrecondition, r)
		}
	}
	if r.Right <= r.Left {
		return fmt.Errorf("%w: right bound %g must exceed left bound %g", ErrPrecondition, r.Right, r.Left)
	}
	if r.Top <= r.Bottom {
		return fmt.Errorf("%w: top bound %g must exceed bottom bound %g", ErrPrecondition, r.Top, r.Bottom)
	}
	return nil
}

func (r Region) Width() float64 {
	return r.Right - r.Left
}

func (r Region) Height() float64 {
	return r.Top - r.Bottom
}

// Grid is the number of sample points along each axis.
type Grid struct {
	Columns, Rows int
}

func (g Grid) Validate() error {
	if g.Columns <= 0 {
		return fmt.Errorf("%w: columns must be positive, got %d", ErrPrecondition, g.Columns)
	}
	if g.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrPrecondition, g.Rows)
	}
	return nil
}

// Step returns the horizontal and vertical distance between adjacent samples.
func (r Region) Step(g Grid) (h, v float64) {
	return r.Width() / float64(g.Columns), r.Height() / float64(g.Rows)
}

// Point is the sample point for the given column and row.
func (r Region) Point(g Grid, col, row int) cnum.Complex {
	h, v := r.Step(g)
	return cnum.New(r.Left+float64(col)*h, r.Top-float64(row)*v)
}

// Cell returns the column and row whose sample point is nearest z, clamped
// to the grid.
func (r Region) Cell(g Grid, z cnum.Complex) (col, row int) {
	h, v := r.Step(g)

	col = int(math.Round((z.Re - r.Left) / h))
	row = int(math.Round((r.Top - z.Im) / v))

	return min(max(col, 0), g.Columns-1), min(max(row, 0), g.Rows-1)
}
