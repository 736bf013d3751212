package simplex

import "errors"

var (
	// ErrShapeMismatch is returned when A, b and c do not describe an m×n problem.
	ErrShapeMismatch = errors.New("simplex: shape mismatch")

	// ErrInvalidInput is returned when a coefficient is NaN or infinite.
	ErrInvalidInput = errors.New("simplex: invalid input")

	ErrUnbounded     = errors.New("simplex: problem is unbounded")
	ErrMaxIterations = errors.New("simplex: iteration limit exceeded")
)
