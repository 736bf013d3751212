package instance

import (
	"fmt"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"

	"q.log/tableau/model"
)

// ReferenceSolution is GLPK's answer for a model.
type ReferenceSolution struct {
	Value float64
	X     []float64

	//Unbounded is set when GLPK proves the objective unbounded
	Unbounded bool
}

// Reference solves m with GLPK's primal simplex. It is used to cross-check
// the tableau engine.
func Reference(m *model.Model) (*ReferenceSolution, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()

	lp.SetObjDir(glpk.MAX)
	lp.AddRows(m.NumRows)
	lp.AddCols(m.NumCols)

	for c := range m.NumCols {
		lp.SetColBnds(c+1, glpk.LO, 0, 0)
		lp.SetObjCoef(c+1, m.C.At(0, c))
	}

	ind := make([]int32, m.NumCols+1)
	for c := range m.NumCols {
		ind[c+1] = int32(c + 1)
	}
	for r := range m.NumRows {
		lp.SetRowBnds(r+1, glpk.UP, 0, m.B.At(r, 0))
		val := make([]float64, m.NumCols+1)
		copy(val[1:], m.A.RawRowView(r))
		lp.SetMatRow(r+1, ind, val)
	}

	parm := glpk.NewSmcp()
	parm.SetMsgLev(glpk.MSG_OFF)
	if err := lp.Simplex(parm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReferenceFailed, err)
	}

	switch lp.Status() {
	case glpk.OPT:
	case glpk.UNBND:
		return &ReferenceSolution{Unbounded: true}, nil
	default:
		return nil, fmt.Errorf("%w: status %v", ErrReferenceFailed, lp.Status())
	}

	sol := &ReferenceSolution{
		Value: lp.ObjVal(),
		X:     make([]float64, m.NumCols),
	}
	for c := range m.NumCols {
		sol.X[c] = lp.ColPrim(c + 1)
	}
	return sol, nil
}
