package instance

import "errors"

var (
	// ErrUnsupportedRow is returned for rows that are not of the form a·x <= b.
	ErrUnsupportedRow = errors.New("instance: only <= constraints are supported")

	// ErrUnsupportedBound is returned for columns whose lower bound is not 0.
	ErrUnsupportedBound = errors.New("instance: only x >= 0 lower bounds are supported")

	ErrInvalidInput    = errors.New("instance: invalid input")
	ErrReferenceFailed = errors.New("instance: reference solver failed")
	ErrUnknownFormat   = errors.New("instance: unknown format")
)
