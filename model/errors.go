package model

import "errors"

var (
	ErrShapeMismatch = errors.New("model: shape mismatch")
	ErrEmptyModel    = errors.New("model: model needs at least one row and one column")
	ErrNonFinite     = errors.New("model: NaN or Inf coefficient")
)
