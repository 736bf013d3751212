package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Model is a linear program in the form
//
//	max c·x  s.t.  Ax <= b, x >= 0
type Model struct {
	//C objective function coefficients, as maximized
	C *mat.Dense

	//A constraints matrix
	A *mat.Dense

	//B constraints rhs
	B *mat.Dense

	NumRows int
	NumCols int

	//Minimize is set when the source minimized; C then holds the negated
	//source objective
	Minimize bool
}

func NewModel(numRows, numCols int) (*Model, error) {
	if numRows <= 0 || numCols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyModel, numRows, numCols)
	}
	return &Model{
		C:       mat.NewDense(1, numCols, nil),
		A:       mat.NewDense(numRows, numCols, nil),
		B:       mat.NewDense(numRows, 1, nil),
		NumRows: numRows,
		NumCols: numCols,
	}, nil
}

// FromSlices builds a model from an objective, one slice per constraint row
// and the right-hand sides.
func FromSlices(c []float64, A [][]float64, b []float64) (*Model, error) {
	m, err := NewModel(len(A), len(c))
	if err != nil {
		return nil, err
	}
	if err := m.SetC(c); err != nil {
		return nil, err
	}

	aVec := make([]float64, 0, m.NumRows*m.NumCols)
	for i, row := range A {
		if len(row) != m.NumCols {
			return nil, fmt.Errorf("%w: row %d has %d coefficients, want %d", ErrShapeMismatch, i, len(row), m.NumCols)
		}
		aVec = append(aVec, row...)
	}
	if err := m.SetA(aVec); err != nil {
		return nil, err
	}
	if err := m.SetB(b); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) SetC(cVec []float64) error {
	if len(cVec) != m.NumCols {
		return fmt.Errorf("%w: %d objective coefficients for %d variables", ErrShapeMismatch, len(cVec), m.NumCols)
	}

	m.C = mat.NewDense(1, m.NumCols, append([]float64(nil), cVec...))

	return nil
}

// SetA sets the constraint matrix from its row-major data.
func (m *Model) SetA(aVec []float64) error {
	if len(aVec) != m.NumCols*m.NumRows {
		return fmt.Errorf("%w: %d coefficients for a %dx%d matrix", ErrShapeMismatch, len(aVec), m.NumRows, m.NumCols)
	}

	m.A = mat.NewDense(m.NumRows, m.NumCols, append([]float64(nil), aVec...))

	return nil
}

func (m *Model) SetB(bVec []float64) error {
	if len(bVec) != m.NumRows {
		return fmt.Errorf("%w: %d rhs values for %d constraints", ErrShapeMismatch, len(bVec), m.NumRows)
	}

	m.B = mat.NewDense(m.NumRows, 1, append([]float64(nil), bVec...))

	return nil
}

// AddRow appends the constraint rVec·x <= rhs.
func (m *Model) AddRow(rVec []float64, rhs float64) error {
	if len(rVec) != m.NumCols {
		return fmt.Errorf("%w: wrong len of rVec, got %d want %d", ErrShapeMismatch, len(rVec), m.NumCols)
	}

	m.A = mat.DenseCopyOf(m.A.Grow(1, 0))
	m.A.SetRow(m.NumRows, rVec)

	m.B = mat.DenseCopyOf(m.B.Grow(1, 0))
	m.B.Set(m.NumRows, 0, rhs)

	m.NumRows++
	return nil
}

// Problem returns the engine's view of the model: the negated objective,
// the rows of A and b. The returned slices do not alias the model.
func (m *Model) Problem() (c []float64, A [][]float64, b []float64) {
	c = make([]float64, m.NumCols)
	floats.ScaleTo(c, -1, m.C.RawRowView(0))

	A = make([][]float64, m.NumRows)
	b = make([]float64, m.NumRows)
	for r := range m.NumRows {
		A[r] = append([]float64(nil), m.A.RawRowView(r)...)
		b[r] = m.B.At(r, 0)
	}
	return c, A, b
}

// Objective evaluates c·x.
func (m *Model) Objective(x []float64) (float64, error) {
	if len(x) != m.NumCols {
		return 0, fmt.Errorf("%w: %d values for %d variables", ErrShapeMismatch, len(x), m.NumCols)
	}
	return floats.Dot(m.C.RawRowView(0), x), nil
}

// SourceValue converts an optimum of max c·x back to the objective sense the
// model was read with.
func (m *Model) SourceValue(z float64) float64 {
	if m.Minimize {
		return -z
	}
	return z
}

// Feasible reports whether x >= 0 and Ax <= b, both within tol.
func (m *Model) Feasible(x []float64, tol float64) (bool, error) {
	if len(x) != m.NumCols {
		return false, fmt.Errorf("%w: %d values for %d variables", ErrShapeMismatch, len(x), m.NumCols)
	}
	if floats.Min(x) < -tol {
		return false, nil
	}

	var ax mat.VecDense
	ax.MulVec(m.A, mat.NewVecDense(len(x), x))
	for r := range m.NumRows {
		if ax.AtVec(r) > m.B.At(r, 0)+tol {
			return false, nil
		}
	}
	return true, nil
}

// OriginFeasible reports whether x = 0 is feasible, i.e. b >= 0. The tableau
// method starts from the origin and has no phase one.
func (m *Model) OriginFeasible() bool {
	return floats.Min(m.B.RawMatrix().Data) >= 0
}

func (m *Model) Validate() error {
	for _, d := range []*mat.Dense{m.C, m.A, m.B} {
		for _, v := range d.RawMatrix().Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %v", ErrNonFinite, v)
			}
		}
	}
	return nil
}

func (m *Model) FormatC() string {
	return fmt.Sprintf("c = %v", mat.Formatted(m.C, mat.Prefix("    "), mat.Squeeze()))
}

func (m *Model) FormatA() string {
	return fmt.Sprintf("A = %v", mat.Formatted(m.A, mat.Prefix("    "), mat.Squeeze()))
}

func (m *Model) FormatB() string {
	return fmt.Sprintf("b = %v", mat.Formatted(m.B, mat.Prefix("    "), mat.Squeeze()))
}
