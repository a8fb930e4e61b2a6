package escape

import "errors"

// ErrPrecondition is returned when a region, grid, or iteration bound cannot
// be sampled. No iteration work is done when it is returned.
var ErrPrecondition = errors.New("precondition violated")
