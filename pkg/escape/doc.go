// Package escape computes escape-time grids for polynomial iteration rules.
//
// A Region of the complex plane is sampled on a Grid of Columns x Rows evenly
// spaced points. Row 0 lies on Region.Top and column 0 on Region.Left; each
// sample coordinate is computed from its index, never by accumulating steps,
// so exactly Rows rows of exactly Columns cells are always produced.
//
// Two outcomes are supported. Counts iterates z <- P(z) + c from z = 0 and
// records how many iterates stayed within the bailout radius. Values iterates
// z <- P(z) from z = c and records the final value, including non-finite ones.
package escape
