package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NewTableau builds the initial tableau for max -c·x s.t. Ax <= b, x >= 0.
//
// c is expected to be already negated, i.e. the objective row is stored as
// reduced costs and the tableau is optimal once that row has no negative
// entry. The result has len(A)+1 rows and len(c)+len(A)+1 columns.
func NewTableau(c []float64, A [][]float64, b []float64) (*mat.Dense, error) {
	if err := validate(c, A, b); err != nil {
		return nil, err
	}

	n, m := len(c), len(A)
	cols := n + m + 1
	t := mat.NewDense(m+1, cols, nil)
	for i := range m {
		row := t.RawRowView(i)
		copy(row, A[i])
		//slack
		row[n+i] = 1
		row[cols-1] = b[i]
	}
	copy(t.RawRowView(m), c)

	return t, nil
}

func validate(c []float64, A [][]float64, b []float64) error {
	if len(b) != len(A) {
		return fmt.Errorf("%w: %d constraint rows but %d rhs values", ErrShapeMismatch, len(A), len(b))
	}
	for i, row := range A {
		if len(row) != len(c) {
			return fmt.Errorf("%w: row %d has %d coefficients, want %d", ErrShapeMismatch, i, len(row), len(c))
		}
		if j := firstNonFinite(row); j >= 0 {
			return fmt.Errorf("%w: A[%d][%d] = %v", ErrInvalidInput, i, j, row[j])
		}
	}
	if j := firstNonFinite(c); j >= 0 {
		return fmt.Errorf("%w: c[%d] = %v", ErrInvalidInput, j, c[j])
	}
	if i := firstNonFinite(b); i >= 0 {
		return fmt.Errorf("%w: b[%d] = %v", ErrInvalidInput, i, b[i])
	}
	return nil
}

func firstNonFinite(v []float64) int {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}
	return -1
}

// enteringColumn returns the first column of the objective row holding a
// strictly negative reduced cost.
func enteringColumn(t *mat.Dense) (int, bool) {
	rows, cols := t.Dims()
	obj := t.RawRowView(rows - 1)
	for j := range cols - 1 {
		if obj[j] < 0 {
			return j, true
		}
	}
	return 0, false
}

// leavingRow runs the minimum ratio test on column e. Ties keep the first
// row found. ok is false when no constraint row has a positive entry in e.
//
// Like entering selection, the test compares exactly, with no tolerance. A
// ratio that overflows to +Inf never qualifies, so a column whose only
// candidates overflow is reported as unbounded rather than pivoted on.
func leavingRow(t *mat.Dense, e int) (row int, ok bool) {
	rows, cols := t.Dims()
	var minRatio float64
	for i := range rows - 1 {
		a := t.At(i, e)
		if a <= 0 {
			continue
		}
		ratio := t.At(i, cols-1) / a
		if math.IsInf(ratio, 1) {
			continue
		}
		if !ok || ratio < minRatio {
			minRatio = ratio
			row = i
			ok = true
		}
	}
	return row, ok
}

// pivot makes column e a unit column with its 1 in row r.
func pivot(t *mat.Dense, r, e int) {
	rows, _ := t.Dims()
	pr := t.RawRowView(r)
	p := pr[e]
	for j := range pr {
		pr[j] /= p
	}

	for i := range rows {
		if i == r {
			continue
		}
		row := t.RawRowView(i)
		floats.AddScaled(row, -row[e], pr)
	}
}
