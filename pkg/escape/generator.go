package escape

import (
	"fmt"
	"github.com/willbeason/polybrot/pkg/cnum"
	"github.com/willbeason/polybrot/pkg/polynomial"
	"github.com/willbeason/polybrot/pkg/transforms"
	"runtime"
	"sync"
)

// Bailout is the squared escape radius: an iterate with NormSqr above it has
// diverged.
const Bailout = 4.0

// CountGrid holds escape counts in row-major order, row 0 at the top.
type CountGrid [][]int

// ValueGrid holds final iterated values in row-major order, row 0 at the top.
type ValueGrid [][]cnum.Complex

// Size returns the number of columns and rows in g.
func (g CountGrid) Size() (columns, rows int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g[0]), len(g)
}

func (g ValueGrid) Size() (columns, rows int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g[0]), len(g)
}

// Generator samples regions with a fixed pool of Workers goroutines, one row at
// a time. Zero Workers uses one per CPU; one Worker runs on the calling
// goroutine. Results do not depend on Workers.
type Generator struct {
	Workers int
}

// GenerateValArr is Generator.Counts with default settings.
func GenerateValArr(left, right, bottom, top float64, p polynomial.Polynomial, columns, rows, bound int) (CountGrid, error) {
	return Generator{}.Counts(
		Region{Left: left, Right: right, Bottom: bottom, Top: top},
		p,
		Grid{Columns: columns, Rows: rows},
		bound,
	)
}

// GenerateValues is Generator.Values with default settings.
func GenerateValues(region Region, p polynomial.Polynomial, grid Grid, bound int) (ValueGrid, error) {
	return Generator{}.Values(region, p, grid, bound)
}

// Counts iterates z <- P(z) + c from z = 0 for each sample point c, for at most
// bound iterations. Each cell holds the number of iterates that did not
// exceed the bailout radius, so cells never escaping hold bound.
func (g Generator) Counts(region Region, p polynomial.Polynomial, grid Grid, bound int) (CountGrid, error) {
	err := validate(region, p, grid, bound)
	if err != nil {
		return nil, err
	}

	rule := transforms.Mandelbrot{P: p}
	return generate(g.workers(grid.Rows), region, grid, func(c cnum.Complex) int {
		return EscapeTime(rule, c, bound)
	}), nil
}

// Values iterates z <- P(z) exactly bound times starting from z = c for each
// sample point c. Non-finite results are kept as they are.
func (g Generator) Values(region Region, p polynomial.Polynomial, grid Grid, bound int) (ValueGrid, error) {
	err := validate(region, p, grid, bound)
	if err != nil {
		return nil, err
	}

	rule := transforms.Julia{P: p}
	return generate(g.workers(grid.Rows), region, grid, func(c cnum.Complex) cnum.Complex {
		return transforms.Iterate(rule, c, c, bound)
	}), nil
}

// EscapeTime counts iterates of t from zero for the sample point c until one
// exceeds the bailout radius, up to bound.
func EscapeTime(t transforms.Transform, c cnum.Complex, bound int) int {
	z := cnum.Zero
	for i := 0; i < bound; i++ {
		z = t.Next(z, c)
		if z.NormSqr() > Bailout {
			return i
		}
	}
	return bound
}

func validate(region Region, p polynomial.Polynomial, grid Grid, bound int) error {
	if err := region.Validate(); err != nil {
		return err
	}
	if err := grid.Validate(); err != nil {
		return err
	}
	if p.Len() == 0 {
		return fmt.Errorf("%w: %w", ErrPrecondition, polynomial.ErrEmpty)
	}
	if bound < 0 {
		return fmt.Errorf("%w: iteration bound must not be negative, got %d", ErrPrecondition, bound)
	}
	return nil
}

func (g Generator) workers(rows int) int {
	n := g.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return min(n, rows)
}

// generate fills a Rows x Columns grid with cell(point). Each row is written by
// exactly one goroutine.
func generate[T any](workers int, region Region, grid Grid, cell func(cnum.Complex) T) [][]T {
	out := make([][]T, grid.Rows)
	for y := range out {
		out[y] = make([]T, grid.Columns)
	}

	fillRow := func(y int) {
		row := out[y]
		for x := range row {
			row[x] = cell(region.Point(grid, x, y))
		}
	}

	if workers <= 1 {
		for y := range out {
			fillRow(y)
		}
		return out
	}

	yChannel := make(chan int)
	go func() {
		for y := 0; y < grid.Rows; y++ {
			yChannel <- y
		}
		close(yChannel)
	}()

	ywg := sync.WaitGroup{}
	ywg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			for y := range yChannel {
				fillRow(y)
			}
			ywg.Done()
		}()
	}
	ywg.Wait()

	return out
}
