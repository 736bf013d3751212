package instance

import (
	"fmt"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"

	"q.log/tableau/model"
)

// Reader reads a mps file to construct a model
type Reader struct {
	filename string
	format   glpk.MPSFormat
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
		format:   glpk.MPS_FILE,
	}
}

// NewFixedReader reads fixed (deck) MPS instead of free MPS.
func NewFixedReader(filename string) *Reader {
	return &Reader{
		filename: filename,
		format:   glpk.MPS_DECK,
	}
}

// ConstructModelFromFile returns the file as max c·x s.t. Ax <= b, x >= 0.
//
// Every row must be an upper bounded row. Columns must have a zero lower
// bound; a finite upper bound u on x_j becomes the extra row x_j <= u. A
// minimization objective is negated.
func (r *Reader) ConstructModelFromFile() (*model.Model, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(r.format, nil, r.filename); err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", r.filename, err)
	}

	m, err := model.NewModel(lp.NumRows(), lp.NumCols())
	if err != nil {
		return nil, fmt.Errorf("instance: %s: %w", r.filename, err)
	}

	sign := 1.0
	if lp.ObjDir() == glpk.MIN {
		sign = -1
		m.Minimize = true
	}

	//populate obj function
	cVec := make([]float64, lp.NumCols())
	for c := range lp.NumCols() {
		cVec[c] = sign * lp.ObjCoef(c+1)
	}
	if err := m.SetC(cVec); err != nil {
		return nil, err
	}

	//populate constraints
	aVec := make([]float64, 0, lp.NumRows()*lp.NumCols())
	rowsRhs := make([]float64, 0, lp.NumRows())
	for r := 1; r <= lp.NumRows(); r++ {
		if lp.RowType(r) != glpk.UP {
			return nil, fmt.Errorf("%w: row %q", ErrUnsupportedRow, lp.RowName(r))
		}

		rowVec := make([]float64, lp.NumCols())
		idxs, row := lp.MatRow(r)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = row[i]
		}
		aVec = append(aVec, rowVec...)
		rowsRhs = append(rowsRhs, lp.RowUB(r))
	}
	if err := m.SetA(aVec); err != nil {
		return nil, err
	}
	if err := m.SetB(rowsRhs); err != nil {
		return nil, err
	}

	//column bounds
	for c := 1; c <= lp.NumCols(); c++ {
		switch lp.ColType(c) {
		case glpk.LO:
			if lp.ColLB(c) != 0 {
				return nil, fmt.Errorf("%w: column %q has lower bound %v", ErrUnsupportedBound, lp.ColName(c), lp.ColLB(c))
			}
		case glpk.DB:
			if lp.ColLB(c) != 0 {
				return nil, fmt.Errorf("%w: column %q has lower bound %v", ErrUnsupportedBound, lp.ColName(c), lp.ColLB(c))
			}
			rowVec := make([]float64, lp.NumCols())
			rowVec[c-1] = 1
			if err := m.AddRow(rowVec, lp.ColUB(c)); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: column %q", ErrUnsupportedBound, lp.ColName(c))
		}
	}

	return m, nil
}
