package physics

import "errors"

var (
	// ErrDivisionByZero is returned by Vector2.Divide for an explicit zero divisor.
	ErrDivisionByZero = errors.New("physics: division by zero")
	// ErrInvariantViolation signals a broken geometric invariant inside a solver,
	// e.g. a convex quadrilateral boundary crossed more than twice by a segment.
	ErrInvariantViolation = errors.New("physics: geometry invariant violated")
	// ErrNonFinite is returned when a NaN or infinite coordinate reaches a query.
	ErrNonFinite = errors.New("physics: non-finite coordinate")
)
